package scenes

import (
	"context"
	"fmt"

	"scenecoach-backend/internal/extract"
)

// Scene is an uploaded scene with its attachments materialized.
type Scene struct {
	Title string
	Files []SceneFile
}

// SceneFile is one retrieved attachment.
type SceneFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// Source resolves the scene an identity should be interviewed about.
type Source interface {
	LatestScene(ctx context.Context, identity string) (Scene, error)
}

// Pipeline turns the newest scene into an ordered question list:
// retrieve attachments, extract text, condense, derive questions. Any stage
// failure short-circuits with its typed error; no partial question set is
// ever returned.
type Pipeline struct {
	Source  Source
	Deriver *Deriver
}

// Ingest runs the ingestion pipeline for one identity.
func (p *Pipeline) Ingest(ctx context.Context, identity string) ([]string, error) {
	scene, err := p.Source.LatestScene(ctx, identity)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, 0, len(scene.Files)+1)
	if scene.Title != "" {
		fragments = append(fragments, "Title: "+scene.Title)
	}
	for _, file := range scene.Files {
		text, err := extract.Text(ctx, file.Data, file.MimeType, file.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseFailed, file.Name, err)
		}
		fragments = append(fragments, text)
	}

	condensed := Condense(fragments)
	if condensed == "" {
		return nil, ErrNoContent
	}

	return p.Deriver.Derive(ctx, condensed)
}
