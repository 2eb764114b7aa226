package scenes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"scenecoach-backend/internal/notion"
)

const createdTimeProperty = "Created time"

// FetchFunc retrieves a document binary by URL, returning its bytes and mime type.
type FetchFunc func(ctx context.Context, rawURL string) ([]byte, string, error)

// NotionSource resolves the newest scene record from the Notion scene
// database. The newest record is shared: every identity interviews against
// the most recently uploaded scene.
type NotionSource struct {
	Client          *notion.Client
	SceneDatabaseID string
	Fetch           FetchFunc
}

// LatestScene queries the scene database sorted by created time, newest
// first, and fetches its attachments.
func (s *NotionSource) LatestScene(ctx context.Context, identity string) (Scene, error) {
	_ = identity // the scene database is shared across identities

	records, err := s.Client.QueryDatabase(ctx, s.SceneDatabaseID, notion.QueryOptions{
		SortProperty: createdTimeProperty,
		Descending:   true,
		PageSize:     1,
	})
	if err != nil {
		return Scene{}, err
	}
	if len(records) == 0 {
		return Scene{}, ErrNoScene
	}

	record := records[0]
	if len(record.FileURLs) == 0 {
		return Scene{}, ErrNoContent
	}

	fetch := s.Fetch
	if fetch == nil {
		fetch = FetchHTTP
	}

	scene := Scene{Title: record.Title}
	for _, fileURL := range record.FileURLs {
		data, mimeType, err := fetch(ctx, fileURL)
		if err != nil {
			return Scene{}, err
		}
		scene.Files = append(scene.Files, SceneFile{
			Name:     fileNameFromURL(fileURL),
			MimeType: mimeType,
			Data:     data,
		})
	}
	return scene, nil
}

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// FetchHTTP retrieves a document binary over HTTP with a bounded timeout.
func FetchHTTP(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: status %d", ErrRetrievalFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func fileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return path.Base(parsed.Path)
}

var _ Source = (*NotionSource)(nil)
