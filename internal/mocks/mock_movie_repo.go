package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Movie, error)
	GetPageFunc func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, int, error)
	CreateFunc  func(ctx context.Context, cmd domain.CreateMovieCommand) (*domain.Movie, error)
	UpdateFunc  func(ctx context.Context, id int64, cmd domain.UpdateMovieCommand) (*domain.Movie, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetPage(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, int, error) {
	return m.GetPageFunc(ctx, pagination)
}

func (m *MockMovieRepo) Create(ctx context.Context, cmd domain.CreateMovieCommand) (*domain.Movie, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *MockMovieRepo) Update(ctx context.Context, id int64, cmd domain.UpdateMovieCommand) (*domain.Movie, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
