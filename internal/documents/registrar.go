package documents

import (
	"context"

	"scenecoach-backend/internal/notion"
)

// NotionRegistrar registers uploaded scenes in the Notion scene database.
type NotionRegistrar struct {
	Client          *notion.Client
	SceneDatabaseID string
}

// RegisterScene creates a scene record with the file as an external attachment.
func (r *NotionRegistrar) RegisterScene(ctx context.Context, title, fileName, fileURL string) error {
	return r.Client.CreateSceneRecord(ctx, r.SceneDatabaseID, title, fileName, fileURL)
}

var _ SceneRegistrar = (*NotionRegistrar)(nil)
