package domain

// MovieStatus is the closed production-status vocabulary. Values match the
// enum labels in the movie_status database type.
type MovieStatus string

const (
	StatusReleased       MovieStatus = "Released"
	StatusPostProduction MovieStatus = "Post Production"
	StatusInProduction   MovieStatus = "In Production"
	StatusPlanned        MovieStatus = "Planned"
	StatusRumored        MovieStatus = "Rumored"
	StatusCanceled       MovieStatus = "Canceled"
)

var movieStatuses = map[MovieStatus]struct{}{
	StatusReleased:       {},
	StatusPostProduction: {},
	StatusInProduction:   {},
	StatusPlanned:        {},
	StatusRumored:        {},
	StatusCanceled:       {},
}

// ParseMovieStatus reports whether s is a known status. Comparison is exact,
// unknown values are rejected at the API boundary.
func ParseMovieStatus(s string) (MovieStatus, bool) {
	status := MovieStatus(s)
	_, ok := movieStatuses[status]

	return status, ok
}

func (s MovieStatus) String() string {
	return string(s)
}
