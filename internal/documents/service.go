package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"scenecoach-backend/internal/shared/storage/object"
	"scenecoach-backend/internal/shared/telemetry"
)

// SceneRegistrar records an uploaded scene in the external content store so
// ingestion can find it as the newest scene.
type SceneRegistrar interface {
	RegisterScene(ctx context.Context, title, fileName, fileURL string) error
}

// Service contains business logic for scene documents.
type Service struct {
	Store     object.ObjectStore
	Repo      Repo
	Registrar SceneRegistrar
}

// Upload saves the file to object storage, registers it as the newest scene,
// and records the document.
func (s *Service) Upload(ctx context.Context, identity, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, identity, fileName, r)
	if err != nil {
		return Document{}, err
	}

	publicURL := s.Store.PublicURL(storageKey)

	if s.Registrar != nil {
		if err := s.Registrar.RegisterScene(ctx, fileName, fileName, publicURL); err != nil {
			return Document{}, fmt.Errorf("register scene: %w", err)
		}
	} else {
		telemetry.Warn("scene registration skipped; no content store configured", map[string]any{
			"file_name": fileName,
		})
	}

	doc := Document{
		ID:         uuid.NewString(),
		Identity:   identity,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		PublicURL:  publicURL,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Current returns the newest document for an identity.
func (s *Service) Current(ctx context.Context, identity string) (Document, error) {
	if identity == "" {
		return Document{}, errors.New("identity required")
	}
	return s.Repo.GetCurrentByIdentity(ctx, identity)
}
