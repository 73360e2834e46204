package app

import (
	"fmt"

	"go.uber.org/zap"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/repository"
	"postboard/internal/service"
)

// App opens the store and wires repositories and services on top of it.
// The caller owns the returned DB and must close it.
func App(cfg *config.Config, log *zap.Logger) (*database.DB, *repository.Repository, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, log)

	return db, repo, services, nil
}
