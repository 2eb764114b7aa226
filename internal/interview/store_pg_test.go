package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreGetDecodesJSONLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &PGStore{DB: db}
	updated := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"identity", "questions", "answers", "updated_at"}).
		AddRow("sess-1", []byte(`["What does your character want?","What stands in their way?"]`), []byte(`["Connection"]`), updated)
	mock.ExpectQuery("SELECT identity, questions, answers, updated_at").
		WithArgs("sess-1").
		WillReturnRows(rows)

	sess, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(sess.Questions) != 2 || len(sess.Answers) != 1 {
		t.Fatalf("unexpected session shape: %+v", sess)
	}
	if sess.Answers[0] != "Connection" {
		t.Fatalf("unexpected answer %q", sess.Answers[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreGetMissingRowMeansNoSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &PGStore{DB: db}
	mock.ExpectQuery("SELECT identity, questions, answers, updated_at").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"identity", "questions", "answers", "updated_at"}))

	_, err = store.Get(context.Background(), "sess-1")
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestPGStorePutUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &PGStore{DB: db}
	sess := Session{
		Identity:  "sess-1",
		Questions: []string{"Q1?", "Q2?"},
		Answers:   []string{"A1"},
		UpdatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO interview_sessions").
		WithArgs(sess.Identity, []byte(`["Q1?","Q2?"]`), []byte(`["A1"]`), sess.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Put(context.Background(), sess); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &PGStore{DB: db}
	mock.ExpectExec("DELETE FROM interview_sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Delete(context.Background(), "sess-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
