package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage    = 0
	DefaultPerPage = 10
)

type paginationParams struct {
	Page    int `validate:"gte=0"`
	PerPage int `validate:"gte=1,lte=100"`
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	pagination, err := readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := paginationParams{Page: pagination.Page, PerPage: pagination.PerPage}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, total, err := app.movieRepo.GetPage(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	metadata, err := domain.NewMetadata(total, pagination)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPageOutOfRange):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(r, metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.Create(r.Context(), toCreateCommand(input))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.movieAlreadyExistsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/movies/%d", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, toMovieDetail(movie), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var input api.UpdateMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// A JSON null decodes into a nil pointer, which would silently read as
	// "leave untouched". None of the movie fields are nullable, so an
	// explicit null is rejected instead.
	err = rejectNullFields(body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.Update(r.Context(), id, toUpdateCommand(input))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.movieAlreadyExistsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func rejectNullFields(body []byte) error {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	for name, value := range fields {
		if string(bytes.TrimSpace(value)) == "null" {
			return fmt.Errorf("field %q must not be null", name)
		}
	}

	return nil
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:       movie.ID,
			Name:     movie.Name,
			Date:     types.Date{Time: movie.ReleaseDate},
			Score:    movie.Score,
			Overview: movie.Overview,
		}
	}

	return summaries
}

func toApiMetadata(r *http.Request, metadata *domain.Metadata) api.Metadata {
	return api.Metadata{
		CurrentPage: metadata.CurrentPage,
		PerPage:     metadata.PerPage,
		TotalPages:  metadata.TotalPages,
		TotalItems:  metadata.TotalItems,
		PrevPage:    pageLocator(r, metadata.Prev),
		NextPage:    pageLocator(r, metadata.Next),
	}
}

func toMovieDetail(movie *domain.Movie) api.MovieDetailResponse {
	resp := api.MovieDetailResponse{
		Id:        movie.ID,
		Name:      movie.Name,
		Date:      types.Date{Time: movie.ReleaseDate},
		Score:     movie.Score,
		Overview:  movie.Overview,
		Status:    movie.Status.String(),
		Budget:    movie.Budget,
		Revenue:   movie.Revenue,
		Genres:    toNamedEntityResponses(movie.Genres),
		Actors:    toNamedEntityResponses(movie.Actors),
		Languages: toNamedEntityResponses(movie.Languages),
		Version:   movie.Version,
	}

	if movie.Country != nil {
		resp.Country = &api.CountryResponse{
			Id:   movie.Country.ID,
			Code: movie.Country.Code,
			Name: movie.Country.Name,
		}
	}

	return resp
}

func toNamedEntityResponses(entities []domain.NamedEntity) []api.NamedEntityResponse {
	responses := make([]api.NamedEntityResponse, len(entities))

	for i, entity := range entities {
		responses[i] = api.NamedEntityResponse{Id: entity.ID, Name: entity.Name}
	}

	return responses
}

func toCreateCommand(input api.CreateMovieRequest) domain.CreateMovieCommand {
	status, _ := domain.ParseMovieStatus(input.Status)

	return domain.CreateMovieCommand{
		Name:        input.Name,
		ReleaseDate: input.Date.Time,
		Score:       input.Score,
		Overview:    input.Overview,
		Status:      status,
		Budget:      input.Budget,
		Revenue:     input.Revenue,
		CountryCode: input.Country,
		Genres:      input.Genres,
		Actors:      input.Actors,
		Languages:   input.Languages,
	}
}

func toUpdateCommand(input api.UpdateMovieRequest) domain.UpdateMovieCommand {
	cmd := domain.UpdateMovieCommand{
		Name:        input.Name,
		Score:       input.Score,
		Overview:    input.Overview,
		Budget:      input.Budget,
		Revenue:     input.Revenue,
		CountryCode: input.Country,
		Genres:      input.Genres,
		Actors:      input.Actors,
		Languages:   input.Languages,
	}

	if input.Date != nil {
		cmd.ReleaseDate = &input.Date.Time
	}

	if input.Status != nil {
		status, _ := domain.ParseMovieStatus(*input.Status)
		cmd.Status = &status
	}

	return cmd
}
