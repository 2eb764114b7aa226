package scenes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"scenecoach-backend/internal/documents"
	"scenecoach-backend/internal/shared/storage/object"
)

// DocumentFinder resolves the current uploaded document for an identity.
type DocumentFinder interface {
	Current(ctx context.Context, identity string) (documents.Document, error)
}

// LocalSource resolves scenes from the local document records and object
// store. Used when no external content store is configured.
type LocalSource struct {
	Finder DocumentFinder
	Store  object.ObjectStore
}

// LatestScene returns the identity's newest uploaded document as a scene.
func (s *LocalSource) LatestScene(ctx context.Context, identity string) (Scene, error) {
	doc, err := s.Finder.Current(ctx, identity)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Scene{}, ErrNoScene
		}
		return Scene{}, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	return Scene{
		Title: doc.FileName,
		Files: []SceneFile{{
			Name:     doc.FileName,
			MimeType: doc.MimeType,
			Data:     data,
		}},
	}, nil
}

var _ Source = (*LocalSource)(nil)
