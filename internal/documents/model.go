package documents

import "time"

// Document represents an uploaded scene document owned by an identity.
type Document struct {
	ID         string
	Identity   string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	PublicURL  string
	CreatedAt  time.Time
}
