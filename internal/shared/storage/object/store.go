package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// PublicURL returns a resolvable location for a stored object; the scene
// registry records that URL next to the scene metadata.
type ObjectStore interface {
	Save(ctx context.Context, identity string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	PublicURL(storageKey string) string
}
