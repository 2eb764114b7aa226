package tips

import (
	"context"

	"scenecoach-backend/internal/notion"
)

// NotionSource gathers tip fragments from every page of the tips database:
// paragraph text and file attachment URLs, in page order.
type NotionSource struct {
	Client         *notion.Client
	TipsDatabaseID string
}

// TipFragments queries the tips database and walks each page's blocks.
func (s *NotionSource) TipFragments(ctx context.Context) ([]string, error) {
	records, err := s.Client.QueryDatabase(ctx, s.TipsDatabaseID, notion.QueryOptions{})
	if err != nil {
		return nil, err
	}

	var fragments []string
	for _, record := range records {
		pageFragments, err := s.Client.PageFragments(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, pageFragments...)
	}
	return fragments, nil
}

// EmptySource is used when no content store is configured; every question
// gets the no-information answer.
type EmptySource struct{}

// TipFragments returns no fragments.
func (EmptySource) TipFragments(ctx context.Context) ([]string, error) {
	_ = ctx
	return nil, nil
}

var (
	_ ContentSource = (*NotionSource)(nil)
	_ ContentSource = EmptySource{}
)
