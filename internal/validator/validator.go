package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxReleaseDateOffset bounds how far in the future a release date may lie.
const maxReleaseDateOffset = 365 * 24 * time.Hour

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("movie_status", validateMovieStatus)
	validator.RegisterValidation("max_release_date", validateMaxReleaseDate)

	return validator
}

func validateMovieStatus(fl validator.FieldLevel) bool {
	_, ok := domain.ParseMovieStatus(fl.Field().String())

	return ok
}

func validateMaxReleaseDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(openapi_types.Date)
	if !ok {
		return false
	}

	return !date.Time.After(time.Now().Add(maxReleaseDateOffset))
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", err.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", err.Param())
	case "movie_status":
		return "must be one of Released, Post Production, In Production, Planned, Rumored or Canceled"
	case "max_release_date":
		return "must not be more than 365 days in the future"
	default:
		return "is invalid"
	}
}
