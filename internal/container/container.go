package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/h2owise/internal/aiquiz"
	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/saulo-duarte/h2owise/internal/router"
	"github.com/saulo-duarte/h2owise/internal/score"
	"gorm.io/gorm"
)

type Container struct {
	Config            config.Config
	DB                *gorm.DB
	QuestionContainer *question.QuestionContainer
	ScoreContainer    *score.ScoreContainer
	AIQuizContainer   *aiquiz.AIQuizContainer
}

// New loads configuration from the environment, connects to the database
// and wires every feature.
func New(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	config.InitLogger(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := config.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	return Build(ctx, cfg, db)
}

func Build(ctx context.Context, cfg config.Config, db *gorm.DB) (*Container, error) {
	questionContainer := question.NewQuestionContainer(db)
	scoreContainer := score.NewScoreContainer(db, questionContainer.Repo)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	return &Container{
		Config:            cfg,
		DB:                db,
		QuestionContainer: questionContainer,
		ScoreContainer:    scoreContainer,
		AIQuizContainer:   aiQuizContainer,
	}, nil
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		APIPrefix:       c.Config.APIPrefix,
		AllowedOrigins:  c.Config.AllowedOrigins,
		QuestionHandler: c.QuestionContainer.Handler,
		ScoreHandler:    c.ScoreContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
	})
}

// Migrate creates or updates the questions and user_scores tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&question.Question{}, &score.ScoreRecord{})
}
