package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

const maxRequestBodySize = 1_048_576

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		case errors.As(err, &invalidUnmarshalError):
			panic(err)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// readIdParam parses the movieId route parameter.
func (app *Application) readIdParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid movie ID")
	}

	return id, nil
}

// readPagination parses the page and per_page query parameters, falling back
// to the defaults when absent. Range checks happen through the validator.
func readPagination(r *http.Request) (domain.Pagination, error) {
	pagination := domain.Pagination{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}

	query := r.URL.Query()

	if value := query.Get("page"); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil {
			return pagination, fmt.Errorf("page must be an integer")
		}
		pagination.Page = page
	}

	if value := query.Get("per_page"); value != "" {
		perPage, err := strconv.Atoi(value)
		if err != nil {
			return pagination, fmt.Errorf("per_page must be an integer")
		}
		pagination.PerPage = perPage
	}

	return pagination, nil
}

// pageLocator renders a page descriptor into a locator relative to the
// current request path.
func pageLocator(r *http.Request, ref *domain.PageRef) *string {
	if ref == nil {
		return nil
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(ref.Page))
	values.Set("per_page", strconv.Itoa(ref.PerPage))

	locator := r.URL.Path + "?" + values.Encode()

	return &locator
}
