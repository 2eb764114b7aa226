package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/documents"
	"scenecoach-backend/internal/interview"
	"scenecoach-backend/internal/llm"
	openai "scenecoach-backend/internal/llm/openai"
	"scenecoach-backend/internal/notion"
	"scenecoach-backend/internal/scenes"
	"scenecoach-backend/internal/shared/config"
	"scenecoach-backend/internal/shared/server"
	"scenecoach-backend/internal/shared/storage/db"
	"scenecoach-backend/internal/shared/storage/object"
	localstore "scenecoach-backend/internal/shared/storage/object/local"
	s3store "scenecoach-backend/internal/shared/storage/object/s3"
	"scenecoach-backend/internal/tips"
)

// App holds shared dependencies wired from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Notion *notion.Client

	DocumentsRepo    documents.Repo
	SessionStore     interview.Store
	DocumentsService *documents.Service
	ScenePipeline    *scenes.Pipeline
	InterviewService *interview.Service
	TipsService      *tips.Service

	DocumentsHandler *documents.Handler
	ScenesHandler    *scenes.Handler
	InterviewHandler *interview.Handler
	TipsHandler      *tips.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notionClient, err := buildNotion(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Notion: notionClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		ScenesHandler:    app.ScenesHandler,
		InterviewHandler: app.InterviewHandler,
		TipsHandler:      app.TipsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildNotion(cfg config.Config) (*notion.Client, error) {
	if strings.TrimSpace(cfg.NotionToken) == "" {
		log.Printf("bootstrap: NOTION_TOKEN empty; scene and tips content resolved locally")
		return nil, nil
	}
	return notion.NewClient(cfg.NotionToken)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.Repo
	var sessionStore interview.Store

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		sessionStore = &interview.PGStore{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		sessionStore = interview.NewMemoryStore()
	}

	generator := llm.Generator(llm.Placeholder{})
	if app.Config.LLMProvider == "openai" {
		apiKey := strings.TrimSpace(app.Config.OpenAIAPIKey)
		if apiKey == "" && isDevLike(app.Config.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder generator")
		} else {
			client, err := openai.NewClient(apiKey, app.Config.LLMModel)
			if err != nil {
				return err
			}
			generator = client
		}
	}

	var registrar documents.SceneRegistrar
	var sceneSource scenes.Source
	var tipsSource tips.ContentSource = tips.EmptySource{}
	if app.Notion != nil {
		registrar = &documents.NotionRegistrar{
			Client:          app.Notion,
			SceneDatabaseID: app.Config.NotionSceneDatabaseID,
		}
		sceneSource = &scenes.NotionSource{
			Client:          app.Notion,
			SceneDatabaseID: app.Config.NotionSceneDatabaseID,
		}
		tipsSource = &tips.NotionSource{
			Client:         app.Notion,
			TipsDatabaseID: app.Config.NotionTipsDatabaseID,
		}
	}

	docSvc := &documents.Service{
		Store:     app.Store,
		Repo:      docRepo,
		Registrar: registrar,
	}
	if sceneSource == nil {
		sceneSource = &scenes.LocalSource{Finder: docSvc, Store: app.Store}
	}

	pipeline := &scenes.Pipeline{
		Source:  sceneSource,
		Deriver: &scenes.Deriver{Generator: generator},
	}

	interviewSvc := interview.NewService(sessionStore, &interview.FeedbackSynthesizer{Generator: generator})
	tipsSvc := &tips.Service{Source: tipsSource, Generator: generator}

	app.DocumentsRepo = docRepo
	app.SessionStore = sessionStore
	app.DocumentsService = docSvc
	app.ScenePipeline = pipeline
	app.InterviewService = interviewSvc
	app.TipsService = tipsSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.ScenesHandler = scenes.NewHandler(pipeline, interviewSvc)
	app.InterviewHandler = interview.NewHandler(interviewSvc)
	app.TipsHandler = tips.NewHandler(tipsSvc)

	return nil
}
