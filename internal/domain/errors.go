package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrMovieAlreadyExists = errors.New("a movie with the same name and release date already exists")
	ErrPageOutOfRange     = errors.New("page is out of range")
)
