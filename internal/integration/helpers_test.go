package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if nestedMap, ok := item.(map[string]any); ok {
					cleanMap(nestedMap)
				}
			}
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(
		context.Background(),
		`TRUNCATE movies, countries, genres, actors, languages RESTART IDENTITY CASCADE`,
	)
	require.NoError(t, err)
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	t.Helper()

	count := 0
	err := db.QueryRow(context.Background(), fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&count)
	require.NoError(t, err)

	return count
}

func defaultTestMovie() domain.CreateMovieCommand {
	return domain.CreateMovieCommand{
		Name:        TestMovieName,
		ReleaseDate: testMovieReleaseDate,
		Score:       TestMovieScore,
		Overview:    TestMovieOverview,
		Status:      domain.StatusReleased,
		Budget:      TestMovieBudget,
		Revenue:     TestMovieRevenue,
		CountryCode: TestMovieCountry,
		Genres:      TestMovieGenres,
		Actors:      TestMovieActors,
		Languages:   TestMovieLanguages,
	}
}

func insertTestMovie(t testing.TB, app *TestApp, cmd domain.CreateMovieCommand) *domain.Movie {
	t.Helper()

	movie, err := app.MovieRepo.Create(context.Background(), cmd)
	require.NoError(t, err)

	return movie
}

// seedMovies inserts n movies with distinct names and consecutive release dates.
func seedMovies(t testing.TB, app *TestApp, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		cmd := defaultTestMovie()
		cmd.Name = fmt.Sprintf("%s %03d", TestMovieName, i)
		cmd.ReleaseDate = testMovieReleaseDate.Add(time.Duration(i) * 24 * time.Hour)

		insertTestMovie(t, app, cmd)
	}
}
