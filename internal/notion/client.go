package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	apiBase    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"
)

// ErrUnavailable wraps any Notion transport, timeout, or API failure.
var ErrUnavailable = errors.New("content store unavailable")

// Client is a typed HTTP client for the Notion content store. Tip pages and
// scene records both live in Notion databases.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Notion client.
func NewClient(token string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("NOTION_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		token:   token,
		baseURL: apiBase,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

// Record is one row of a Notion database: its page ID, the first title
// property found, and any file attachment URLs.
type Record struct {
	ID       string
	Title    string
	FileURLs []string
}

// QueryOptions bounds a database query.
type QueryOptions struct {
	SortProperty string
	Descending   bool
	PageSize     int
}

type sortObject struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Sorts    []sortObject `json:"sorts,omitempty"`
	PageSize int          `json:"page_size,omitempty"`
}

type richText struct {
	PlainText string `json:"plain_text"`
	Text      struct {
		Content string `json:"content"`
	} `json:"text"`
}

func (r richText) content() string {
	if r.Text.Content != "" {
		return r.Text.Content
	}
	return r.PlainText
}

type fileRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
	File *struct {
		URL string `json:"url"`
	} `json:"file,omitempty"`
	External *struct {
		URL string `json:"url"`
	} `json:"external,omitempty"`
}

func (f fileRef) url() string {
	switch {
	case f.Type == "file" && f.File != nil:
		return f.File.URL
	case f.Type == "external" && f.External != nil:
		return f.External.URL
	default:
		return ""
	}
}

type pageProperty struct {
	Title []richText `json:"title,omitempty"`
	Files []fileRef  `json:"files,omitempty"`
}

type queryResponse struct {
	Results []struct {
		ID         string                  `json:"id"`
		Properties map[string]pageProperty `json:"properties"`
	} `json:"results"`
}

// QueryDatabase returns database rows as Records, honoring sort and page size.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, opts QueryOptions) ([]Record, error) {
	if strings.TrimSpace(databaseID) == "" {
		return nil, fmt.Errorf("database id is required")
	}

	reqBody := queryRequest{PageSize: opts.PageSize}
	if opts.SortProperty != "" {
		direction := "ascending"
		if opts.Descending {
			direction = "descending"
		}
		reqBody.Sorts = []sortObject{{Property: opts.SortProperty, Direction: direction}}
	}

	endpoint := fmt.Sprintf("%s/databases/%s/query", c.baseURL, url.PathEscape(databaseID))
	var parsed queryResponse
	if err := c.do(ctx, http.MethodPost, endpoint, reqBody, &parsed); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(parsed.Results))
	for _, page := range parsed.Results {
		rec := Record{ID: page.ID}
		for _, prop := range page.Properties {
			if rec.Title == "" && len(prop.Title) > 0 {
				rec.Title = prop.Title[0].content()
			}
			for _, f := range prop.Files {
				if u := f.url(); u != "" {
					rec.FileURLs = append(rec.FileURLs, u)
				}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

type blocksResponse struct {
	Results []struct {
		Type      string `json:"type"`
		Paragraph *struct {
			RichText []richText `json:"rich_text"`
		} `json:"paragraph,omitempty"`
		File *fileRef `json:"file,omitempty"`
	} `json:"results"`
}

// PageFragments walks a page's child blocks and collects paragraph text and
// file attachment URLs as raw fragments, in block order.
func (c *Client) PageFragments(ctx context.Context, pageID string) ([]string, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, fmt.Errorf("page id is required")
	}

	endpoint := fmt.Sprintf("%s/blocks/%s/children", c.baseURL, url.PathEscape(pageID))
	var parsed blocksResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &parsed); err != nil {
		return nil, err
	}

	var fragments []string
	for _, block := range parsed.Results {
		switch block.Type {
		case "paragraph":
			if block.Paragraph == nil {
				continue
			}
			var b strings.Builder
			for _, rt := range block.Paragraph.RichText {
				b.WriteString(rt.content())
			}
			if b.Len() > 0 {
				fragments = append(fragments, b.String())
			}
		case "file":
			if block.File == nil {
				continue
			}
			if u := block.File.url(); u != "" {
				fragments = append(fragments, "File URL: "+u)
			}
		}
	}
	return fragments, nil
}

type createPageRequest struct {
	Parent struct {
		DatabaseID string `json:"database_id"`
	} `json:"parent"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// CreateSceneRecord registers an uploaded scene in the scene database: a
// title row plus the file as an external attachment.
func (c *Client) CreateSceneRecord(ctx context.Context, databaseID, title, fileName, fileURL string) error {
	if strings.TrimSpace(databaseID) == "" {
		return fmt.Errorf("database id is required")
	}

	titleProp, err := json.Marshal(map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": title}},
		},
	})
	if err != nil {
		return err
	}
	filesProp, err := json.Marshal(map[string]any{
		"files": []map[string]any{
			{"name": fileName, "external": map[string]any{"url": fileURL}},
		},
	})
	if err != nil {
		return err
	}

	reqBody := createPageRequest{
		Properties: map[string]json.RawMessage{
			"Title":        titleProp,
			"Upload Scene": filesProp,
		},
	}
	reqBody.Parent.DatabaseID = databaseID

	return c.do(ctx, http.MethodPost, c.baseURL+"/pages", reqBody, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return fmt.Errorf("%w: request timeout: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, truncate(string(raw), 300))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: response parse: %v", ErrUnavailable, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
