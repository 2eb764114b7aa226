package interview

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGStore implements Store using Postgres. Question and answer lists are
// stored as JSONB so the row stays one-per-identity.
type PGStore struct {
	DB *sql.DB
}

// Get returns the session bound for an identity.
func (s *PGStore) Get(ctx context.Context, identity string) (Session, error) {
	const query = `
SELECT identity, questions, answers, updated_at
FROM interview_sessions
WHERE identity = $1`

	var sess Session
	var questionsRaw, answersRaw []byte

	err := s.DB.QueryRowContext(ctx, query, identity).Scan(
		&sess.Identity,
		&questionsRaw,
		&answersRaw,
		&sess.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNoActiveSession
	}
	if err != nil {
		return Session{}, err
	}

	if err := json.Unmarshal(questionsRaw, &sess.Questions); err != nil {
		return Session{}, fmt.Errorf("decode questions: %w", err)
	}
	if err := json.Unmarshal(answersRaw, &sess.Answers); err != nil {
		return Session{}, fmt.Errorf("decode answers: %w", err)
	}
	return sess, nil
}

// Put stores or replaces the session for its identity.
func (s *PGStore) Put(ctx context.Context, session Session) error {
	const query = `
INSERT INTO interview_sessions (identity, questions, answers, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (identity) DO UPDATE
SET questions = EXCLUDED.questions,
    answers = EXCLUDED.answers,
    updated_at = EXCLUDED.updated_at`

	questionsRaw, err := json.Marshal(session.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	answersRaw, err := json.Marshal(session.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, query, session.Identity, questionsRaw, answersRaw, session.UpdatedAt)
	return err
}

// Delete removes the session for an identity, if any.
func (s *PGStore) Delete(ctx context.Context, identity string) error {
	const query = `DELETE FROM interview_sessions WHERE identity = $1`
	_, err := s.DB.ExecContext(ctx, query, identity)
	return err
}

var _ Store = (*PGStore)(nil)
