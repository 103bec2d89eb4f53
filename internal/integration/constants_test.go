package integration_test

import "time"

const (
	TestMovieName     = "The Martian"
	TestMovieScore    = 80.0
	TestMovieOverview = "An astronaut is stranded on Mars."
	TestMovieBudget   = int64(108_000_000)
	TestMovieRevenue  = int64(630_000_000)
	TestMovieCountry  = "US"
)

var (
	TestMovieGenres      = []string{"Science Fiction", "Drama"}
	TestMovieActors      = []string{"Matt Damon", "Jessica Chastain"}
	TestMovieLanguages   = []string{"English"}
	testMovieReleaseDate = time.Date(2015, 10, 2, 0, 0, 0, 0, time.UTC)
)
