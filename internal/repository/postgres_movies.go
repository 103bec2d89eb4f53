package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `
		SELECT m.id, m.name, m.release_date, m.score, m.overview, m.status,
			m.budget, m.revenue, c.id, c.code, c.name,
			m.created_at, m.updated_at, m.version
		FROM movies m
		LEFT JOIN countries c ON m.country_id = c.id
		WHERE m.id = $1
	`

	var (
		movie       domain.Movie
		status      string
		countryId   *int64
		countryCode *string
		countryName *string
	)

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.ReleaseDate,
		&movie.Score,
		&movie.Overview,
		&status,
		&movie.Budget,
		&movie.Revenue,
		&countryId,
		&countryCode,
		&countryName,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	movie.Status = domain.MovieStatus(status)

	if countryId != nil {
		movie.Country = &domain.Country{ID: *countryId, Code: *countryCode, Name: countryName}
	}

	if movie.Genres, err = p.relatedEntities(ctx, id, genreRelation); err != nil {
		return nil, err
	}
	if movie.Actors, err = p.relatedEntities(ctx, id, actorRelation); err != nil {
		return nil, err
	}
	if movie.Languages, err = p.relatedEntities(ctx, id, languageRelation); err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) relatedEntities(
	ctx context.Context,
	movieId int64,
	rel lookupRelation) ([]domain.NamedEntity, error) {

	query := fmt.Sprintf(`
		SELECT l.id, l.name
		FROM %s l
		JOIN %s j ON j.%s = l.id
		WHERE j.movie_id = $1
		ORDER BY l.id
	`, rel.table, rel.joinTable, rel.fkColumn)

	rows, err := p.db.Query(ctx, query, movieId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]domain.NamedEntity, 0)

	for rows.Next() {
		var entity domain.NamedEntity

		if err := rows.Scan(&entity.ID, &entity.Name); err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

// GetPage returns one window of the collection ordered by id, plus the total
// row count. Count and page run as separate statements, so the total can race
// ahead of or behind the window under concurrent writes.
func (p *PostgresMovieRepository) GetPage(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Movie, int, error) {

	total := 0

	err := p.db.QueryRow(ctx, `SELECT count(*) FROM movies`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, release_date, score, overview
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	movies := make([]*domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.ReleaseDate,
			&movie.Score,
			&movie.Overview,
		)

		if err != nil {
			return nil, 0, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// Create persists the movie and all of its related entities in one
// transaction: the movie, its join rows and any lookup rows created on first
// use commit together, or none of them do.
func (p *PostgresMovieRepository) Create(
	ctx context.Context,
	cmd domain.CreateMovieCommand) (*domain.Movie, error) {

	var movieId int64

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		countryId, err := resolveCountry(ctx, tx, cmd.CountryCode)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO movies (name, release_date, score, overview, status, budget, revenue, country_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`

		err = tx.QueryRow(
			ctx,
			query,
			cmd.Name,
			cmd.ReleaseDate,
			cmd.Score,
			cmd.Overview,
			cmd.Status.String(),
			cmd.Budget,
			cmd.Revenue,
			countryId).Scan(&movieId)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrMovieAlreadyExists
			}

			return err
		}

		if err := attachRelatedEntities(ctx, tx, movieId, genreRelation, cmd.Genres); err != nil {
			return err
		}
		if err := attachRelatedEntities(ctx, tx, movieId, actorRelation, cmd.Actors); err != nil {
			return err
		}
		if err := attachRelatedEntities(ctx, tx, movieId, languageRelation, cmd.Languages); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return p.GetById(ctx, movieId)
}

// Update overwrites exactly the fields present in cmd. A present list field
// replaces the movie's whole association set for that relation. The target
// row is locked for the duration of the transaction; concurrent updates
// serialize and the last writer wins.
func (p *PostgresMovieRepository) Update(
	ctx context.Context,
	id int64,
	cmd domain.UpdateMovieCommand) (*domain.Movie, error) {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var movieId int64

		err := tx.QueryRow(ctx, `SELECT id FROM movies WHERE id = $1 FOR UPDATE`, id).Scan(&movieId)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		sets := []string{"updated_at = now()", "version = version + 1"}
		args := []any{id}

		set := func(column string, value any) {
			args = append(args, value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}

		if cmd.Name != nil {
			set("name", *cmd.Name)
		}
		if cmd.ReleaseDate != nil {
			set("release_date", *cmd.ReleaseDate)
		}
		if cmd.Score != nil {
			set("score", *cmd.Score)
		}
		if cmd.Overview != nil {
			set("overview", *cmd.Overview)
		}
		if cmd.Status != nil {
			set("status", cmd.Status.String())
		}
		if cmd.Budget != nil {
			set("budget", *cmd.Budget)
		}
		if cmd.Revenue != nil {
			set("revenue", *cmd.Revenue)
		}
		if cmd.CountryCode != nil {
			countryId, err := resolveCountry(ctx, tx, *cmd.CountryCode)
			if err != nil {
				return err
			}
			set("country_id", countryId)
		}

		query := fmt.Sprintf(`UPDATE movies SET %s WHERE id = $1`, strings.Join(sets, ", "))

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrMovieAlreadyExists
			}

			return err
		}

		if err := replaceRelatedEntities(ctx, tx, id, genreRelation, cmd.Genres); err != nil {
			return err
		}
		if err := replaceRelatedEntities(ctx, tx, id, actorRelation, cmd.Actors); err != nil {
			return err
		}
		if err := replaceRelatedEntities(ctx, tx, id, languageRelation, cmd.Languages); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return p.GetById(ctx, id)
}

// Delete removes the movie row; the cascade on the join tables removes only
// the association rows. Lookup entities are never deleted, even when the last
// movie referencing them goes away.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// resolveCountry maps a country code to its row id, creating the row on first
// use. An empty code means no country reference.
func resolveCountry(ctx context.Context, tx pgx.Tx, code string) (*int64, error) {
	if code == "" {
		return nil, nil
	}

	id, err := findOrCreateLookup(ctx, tx, "countries", "code", code)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func attachRelatedEntities(
	ctx context.Context,
	tx pgx.Tx,
	movieId int64,
	rel lookupRelation,
	names []string) error {

	names = dedupe(names)
	if len(names) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(names))

	for _, name := range names {
		entityId, err := findOrCreateLookup(ctx, tx, rel.table, "name", name)
		if err != nil {
			return err
		}

		rows = append(rows, []any{movieId, entityId})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{rel.joinTable},
		[]string{"movie_id", rel.fkColumn},
		pgx.CopyFromRows(rows),
	)

	return err
}

// replaceRelatedEntities implements full replacement: a nil list means "leave
// the association set alone", a non-nil list (empty included) becomes the new
// complete set.
func replaceRelatedEntities(
	ctx context.Context,
	tx pgx.Tx,
	movieId int64,
	rel lookupRelation,
	names *[]string) error {

	if names == nil {
		return nil
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE movie_id = $1`, rel.joinTable)
	if _, err := tx.Exec(ctx, deleteQuery, movieId); err != nil {
		return err
	}

	return attachRelatedEntities(ctx, tx, movieId, rel, *names)
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
