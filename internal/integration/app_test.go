package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/app"
	"github.com/metinatakli/movie-catalog-service/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog-service/internal/validator"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	MovieRepo *repository.PostgresMovieRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		movieRepo,
	)

	return &TestApp{
		App:       application,
		DB:        db,
		MovieRepo: movieRepo,
	}, nil
}
