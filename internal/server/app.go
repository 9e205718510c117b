// Package server wires the reference marketplace backend: database,
// services and the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/logging"
	"github.com/dmitrijs2005/photocards/internal/server/config"
	"github.com/dmitrijs2005/photocards/internal/server/httpapi"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/photocards/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	m := repomanager.NewSQLiteRepositoryManager()
	db, err := repomanager.Open(ctx, m, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	photos, err := services.NewPhotoStore(c.PhotoDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	svc := httpapi.Services{
		Users:       services.NewUserService(db, m),
		Listings:    services.NewListingService(db, m, photos),
		Collections: services.NewCollectionService(db, m),
		Comments:    services.NewCommentService(db, m),
		Photos:      photos,
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   httpapi.NewHTTPServer(c.EndpointAddr, logger, svc, c.MaxUploadBytes),
	}, nil
}

// Run serves the API until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...", "database", app.config.DatabaseDSN, "photos", app.config.PhotoDir)

	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}

func (app *App) Close() error {
	return app.db.Close()
}
