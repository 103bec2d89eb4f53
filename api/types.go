// Package api defines the wire schema of the movie catalog service.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CountryResponse struct {
	Id   int64   `json:"id"`
	Code string  `json:"code"`
	Name *string `json:"name"`
}

type NamedEntityResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieSummary is the list-item projection of a movie. Related entities are
// only included on the detail response.
type MovieSummary struct {
	Id       int64      `json:"id"`
	Name     string     `json:"name"`
	Date     types.Date `json:"date"`
	Score    float64    `json:"score"`
	Overview string     `json:"overview"`
}

type MovieDetailResponse struct {
	Id        int64                 `json:"id"`
	Name      string                `json:"name"`
	Date      types.Date            `json:"date"`
	Score     float64               `json:"score"`
	Overview  string                `json:"overview"`
	Status    string                `json:"status"`
	Budget    int64                 `json:"budget"`
	Revenue   int64                 `json:"revenue"`
	Country   *CountryResponse      `json:"country"`
	Genres    []NamedEntityResponse `json:"genres"`
	Actors    []NamedEntityResponse `json:"actors"`
	Languages []NamedEntityResponse `json:"languages"`
	Version   int                   `json:"version"`
}

type Metadata struct {
	CurrentPage int     `json:"currentPage"`
	PerPage     int     `json:"perPage"`
	TotalPages  int     `json:"totalPages"`
	TotalItems  int     `json:"totalItems"`
	PrevPage    *string `json:"prevPage,omitempty"`
	NextPage    *string `json:"nextPage,omitempty"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata Metadata       `json:"metadata"`
}

type CreateMovieRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=255"`
	Date      types.Date `json:"date" validate:"required,max_release_date"`
	Score     float64    `json:"score" validate:"gte=0,lte=100"`
	Overview  string     `json:"overview"`
	Status    string     `json:"status" validate:"required,movie_status"`
	Budget    int64      `json:"budget" validate:"gte=0"`
	Revenue   int64      `json:"revenue" validate:"gte=0"`
	Country   string     `json:"country" validate:"required,min=2,max=5"`
	Genres    []string   `json:"genres" validate:"dive,required"`
	Actors    []string   `json:"actors" validate:"dive,required"`
	Languages []string   `json:"languages" validate:"dive,required"`
}

// UpdateMovieRequest makes every field optional; nil means "leave untouched".
type UpdateMovieRequest struct {
	Name      *string     `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Date      *types.Date `json:"date,omitempty" validate:"omitempty,max_release_date"`
	Score     *float64    `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Overview  *string     `json:"overview,omitempty"`
	Status    *string     `json:"status,omitempty" validate:"omitempty,movie_status"`
	Budget    *int64      `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Revenue   *int64      `json:"revenue,omitempty" validate:"omitempty,gte=0"`
	Country   *string     `json:"country,omitempty" validate:"omitempty,min=2,max=5"`
	Genres    *[]string   `json:"genres,omitempty" validate:"omitempty,dive,required"`
	Actors    *[]string   `json:"actors,omitempty" validate:"omitempty,dive,required"`
	Languages *[]string   `json:"languages,omitempty" validate:"omitempty,dive,required"`
}
