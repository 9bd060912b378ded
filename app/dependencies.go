package app

import (
	"context"
	"fmt"

	"github.com/tupelotree/contact-backend/config"
	"github.com/tupelotree/contact-backend/handlers"
	"github.com/tupelotree/contact-backend/services/challenge"
	"github.com/tupelotree/contact-backend/services/ledger"
	"github.com/tupelotree/contact-backend/services/mirror"
	"github.com/tupelotree/contact-backend/services/notify"
	"github.com/tupelotree/contact-backend/services/pipeline"
	"github.com/tupelotree/contact-backend/web"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Pipeline and stages
	Pipeline *pipeline.Service

	// HTTP handlers
	Contact *handlers.ContactHandler
	Pages   *handlers.PageHandler
	Health  *handlers.HealthHandler
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	verifier := challenge.New(cfg.Challenge, logger)

	notifier, err := notify.New(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	ledgerWriter := ledger.New(cfg.Ledger.Path, logger)

	store, err := mirror.NewDriveStore(ctx, cfg.Mirror)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize remote mirror store: %w", err)
	}
	syncer := mirror.New(store, logger)

	deps.Pipeline = pipeline.New(verifier, notifier, ledgerWriter, syncer, logger)

	templates, err := web.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	deps.Contact = handlers.NewContactHandler(deps.Pipeline, logger)
	deps.Pages = handlers.NewPageHandler(templates, cfg.Challenge.SiteKey, logger)
	deps.Health = handlers.NewHealthHandler(cfg.Ledger.Path, logger)

	logger.Info("all dependencies initialized",
		zap.String("ledger_path", cfg.Ledger.Path),
		zap.String("mirror_file_id", cfg.Mirror.FileID))
	return deps, nil
}
