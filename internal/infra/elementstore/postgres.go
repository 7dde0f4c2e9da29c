package elementstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/summarize-console/internal/domain/page"
)

// Schema creates the table PostgresStore expects.
const Schema = `
CREATE TABLE IF NOT EXISTS ui_elements (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore implements page.ElementStore using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs the store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate applies Schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, Schema)
	return err
}

func (s *PostgresStore) Text(ctx context.Context, id string) (page.Element, bool, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, text, updated_at
		FROM ui_elements
		WHERE id = $1
	`, id)
	el, err := scanElement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return page.Element{}, false, nil
		}
		return page.Element{}, false, err
	}
	return el, true, nil
}

func (s *PostgresStore) SetText(ctx context.Context, id, text string) (page.Element, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO ui_elements (id, text, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at
		RETURNING id, text, updated_at
	`, id, text)
	return scanElement(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanElement(row rowScanner) (page.Element, error) {
	var el page.Element
	if err := row.Scan(&el.ID, &el.Text, &el.UpdatedAt); err != nil {
		return page.Element{}, err
	}
	el.UpdatedAt = el.UpdatedAt.UTC()
	return el, nil
}

var _ page.ElementStore = (*PostgresStore)(nil)
