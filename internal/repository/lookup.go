package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// lookupRelation describes a many-to-many lookup table and its join table.
type lookupRelation struct {
	table     string
	joinTable string
	fkColumn  string
}

var (
	genreRelation    = lookupRelation{table: "genres", joinTable: "movie_genres", fkColumn: "genre_id"}
	actorRelation    = lookupRelation{table: "actors", joinTable: "movie_actors", fkColumn: "actor_id"}
	languageRelation = lookupRelation{table: "languages", joinTable: "movie_languages", fkColumn: "language_id"}
)

const findOrCreateMaxAttempts = 3

// findOrCreateLookup resolves a natural key to the id of the unique row
// holding it, creating the row on first use. It must run inside the caller's
// transaction so newly created rows commit together with the movie that
// references them.
//
// Concurrent resolution of the same key can race: both tasks miss the select
// and both attempt the insert. ON CONFLICT DO NOTHING lets the loser continue
// without poisoning the transaction; the winner's row becomes visible to the
// next select, so the loop converges in one extra round trip.
func findOrCreateLookup(ctx context.Context, tx pgx.Tx, table, column, value string) (int64, error) {
	selectQuery := fmt.Sprintf(`SELECT id FROM %s WHERE %s = $1`, table, column)
	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO NOTHING RETURNING id`,
		table, column, column,
	)

	var id int64

	for range findOrCreateMaxAttempts {
		err := tx.QueryRow(ctx, selectQuery, value).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}

		err = tx.QueryRow(ctx, insertQuery, value).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}
	}

	return 0, fmt.Errorf("find-or-create on %s gave up after %d attempts", table, findOrCreateMaxAttempts)
}

// dedupe keeps the first occurrence of each value, preserving order. Keys are
// compared exactly; an empty string is a valid key.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
