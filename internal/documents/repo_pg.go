package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new scene document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO scene_documents (
    id,
    identity,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    public_url,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}
	var publicURL sql.NullString
	if doc.PublicURL != "" {
		publicURL = sql.NullString{String: doc.PublicURL, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Identity,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		publicURL,
		doc.CreatedAt,
	)
	return err
}

// GetCurrentByIdentity returns the latest document for an identity.
func (r *PGRepo) GetCurrentByIdentity(ctx context.Context, identity string) (Document, error) {
	const query = `
SELECT id, identity, file_name, mime_type, size_bytes, storage_key, public_url, created_at
FROM scene_documents
WHERE identity = $1
ORDER BY created_at DESC
LIMIT 1`

	var doc Document
	var storageKey sql.NullString
	var publicURL sql.NullString

	err := r.DB.QueryRowContext(ctx, query, identity).Scan(
		&doc.ID,
		&doc.Identity,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageKey,
		&publicURL,
		&doc.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}

	doc.StorageKey = storageKey.String
	doc.PublicURL = publicURL.String
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
