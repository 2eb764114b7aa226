package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient("secret-token")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client.WithBaseURL(server.URL)
}

func TestQueryDatabaseParsesTitleAndFiles(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("Authorization") != "Bearer secret-token" {
			t.Errorf("missing auth header")
		}
		if r.Header.Get("Notion-Version") == "" {
			t.Errorf("missing Notion-Version header")
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{
			"results": [{
				"id": "page-1",
				"properties": {
					"Title": {"title": [{"plain_text": "Kitchen Argument"}]},
					"Upload Scene": {"files": [{"type": "external", "external": {"url": "https://cdn.example.com/scene.pdf"}}]}
				}
			}]
		}`))
	})

	records, err := client.QueryDatabase(context.Background(), "db-1", QueryOptions{
		SortProperty: "Created time",
		Descending:   true,
		PageSize:     1,
	})
	if err != nil {
		t.Fatalf("QueryDatabase: %v", err)
	}
	if gotPath != "/databases/db-1/query" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["page_size"] != float64(1) {
		t.Fatalf("expected page_size 1, got %v", gotBody["page_size"])
	}
	sorts, ok := gotBody["sorts"].([]any)
	if !ok || len(sorts) != 1 {
		t.Fatalf("expected one sort object, got %v", gotBody["sorts"])
	}
	sort := sorts[0].(map[string]any)
	if sort["property"] != "Created time" || sort["direction"] != "descending" {
		t.Fatalf("unexpected sort %v", sort)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != "page-1" || rec.Title != "Kitchen Argument" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(rec.FileURLs) != 1 || rec.FileURLs[0] != "https://cdn.example.com/scene.pdf" {
		t.Fatalf("unexpected file urls %v", rec.FileURLs)
	}
}

func TestPageFragmentsCollectsParagraphsAndFiles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/blocks/page-1/children") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"results": [
				{"type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "Breathe "}, {"plain_text": "deeply."}]}},
				{"type": "paragraph", "paragraph": {"rich_text": []}},
				{"type": "file", "file": {"type": "file", "file": {"url": "https://cdn.example.com/tips.pdf"}}},
				{"type": "heading_1"}
			]
		}`))
	})

	fragments, err := client.PageFragments(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("PageFragments: %v", err)
	}
	want := []string{"Breathe deeply.", "File URL: https://cdn.example.com/tips.pdf"}
	if len(fragments) != len(want) {
		t.Fatalf("expected %v, got %v", want, fragments)
	}
	for i := range want {
		if fragments[i] != want[i] {
			t.Fatalf("fragment %d = %q, want %q", i, fragments[i], want[i])
		}
	}
}

func TestCreateSceneRecordSendsTitleAndAttachment(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.CreateSceneRecord(context.Background(), "db-1", "scene.pdf", "scene.pdf", "https://cdn.example.com/scene.pdf")
	if err != nil {
		t.Fatalf("CreateSceneRecord: %v", err)
	}

	parent := gotBody["parent"].(map[string]any)
	if parent["database_id"] != "db-1" {
		t.Fatalf("unexpected parent %v", parent)
	}
	props := gotBody["properties"].(map[string]any)
	if _, ok := props["Title"]; !ok {
		t.Fatalf("missing Title property: %v", props)
	}
	files := props["Upload Scene"].(map[string]any)["files"].([]any)
	file := files[0].(map[string]any)
	if file["external"].(map[string]any)["url"] != "https://cdn.example.com/scene.pdf" {
		t.Fatalf("unexpected attachment %v", file)
	}
}

func TestAPIFailureWrapsErrUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"down"}`))
	})

	_, err := client.QueryDatabase(context.Background(), "db-1", QueryOptions{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
