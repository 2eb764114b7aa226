package documents

import "context"

// Repo defines persistence operations for scene documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetCurrentByIdentity(ctx context.Context, identity string) (Document, error)
}
