package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int64
	Name        string
	ReleaseDate time.Time
	Score       float64
	Overview    string
	Status      MovieStatus
	Budget      int64
	Revenue     int64
	Country     *Country
	Genres      []NamedEntity
	Actors      []NamedEntity
	Languages   []NamedEntity
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

// Country is identified by its code; the display name is optional.
type Country struct {
	ID   int64
	Code string
	Name *string
}

// NamedEntity is a lookup row (genre, actor or language) identified by its name.
type NamedEntity struct {
	ID   int64
	Name string
}

type CreateMovieCommand struct {
	Name        string
	ReleaseDate time.Time
	Score       float64
	Overview    string
	Status      MovieStatus
	Budget      int64
	Revenue     int64
	CountryCode string
	Genres      []string
	Actors      []string
	Languages   []string
}

// UpdateMovieCommand carries a partial update: nil fields are left untouched.
// A non-nil list replaces the movie's entire association set for that relation.
type UpdateMovieCommand struct {
	Name        *string
	ReleaseDate *time.Time
	Score       *float64
	Overview    *string
	Status      *MovieStatus
	Budget      *int64
	Revenue     *int64
	CountryCode *string
	Genres      *[]string
	Actors      *[]string
	Languages   *[]string
}

type MovieRepository interface {
	GetById(ctx context.Context, id int64) (*Movie, error)
	GetPage(ctx context.Context, pagination Pagination) ([]*Movie, int, error)
	Create(ctx context.Context, cmd CreateMovieCommand) (*Movie, error)
	Update(ctx context.Context, id int64, cmd UpdateMovieCommand) (*Movie, error)
	Delete(ctx context.Context, id int64) error
}
