package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"merit/internal/badge/models"
	id "merit/pkg/domain"
	"merit/pkg/platform/sentinel"
)

// Postgres persists registry state in PostgreSQL.
//
// The issuance counter lives in a singleton registry_state row rather than a
// sequence: sequences leave gaps on rollback, and issued ids must stay
// contiguous. Mint increments the counter and inserts the badge in one
// transaction, so a rejected mint consumes no id.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS registry_state (
	singleton     BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
	next_badge_id BIGINT NOT NULL DEFAULT 0,
	base_uri      TEXT NOT NULL DEFAULT ''
);

INSERT INTO registry_state (singleton) VALUES (TRUE)
ON CONFLICT (singleton) DO NOTHING;

CREATE TABLE IF NOT EXISTS badges (
	id        BIGINT PRIMARY KEY,
	owner     TEXT NOT NULL UNIQUE,
	score     BIGINT NOT NULL,
	issued_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the registry tables when they do not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure registry schema: %w", err)
	}
	return nil
}

func (s *Postgres) Mint(ctx context.Context, owner id.Account, score uint, issuedAt time.Time) (*models.Badge, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin mint tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Row lock on the singleton serializes concurrent mints and keeps ids
	// gap-free.
	var nextID uint64
	err = tx.QueryRowContext(ctx,
		`UPDATE registry_state SET next_badge_id = next_badge_id + 1 RETURNING next_badge_id`,
	).Scan(&nextID)
	if err != nil {
		return nil, fmt.Errorf("allocate badge id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO badges (id, owner, score, issued_at) VALUES ($1, $2, $3, $4)`,
		int64(nextID), owner.String(), int64(score), issuedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, sentinel.ErrAlreadyUsed
		}
		return nil, fmt.Errorf("insert badge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit mint: %w", err)
	}
	return &models.Badge{
		ID:       id.BadgeID(nextID),
		Owner:    owner,
		Score:    score,
		IssuedAt: issuedAt,
	}, nil
}

func (s *Postgres) FindByID(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error) {
	return s.scanBadge(s.db.QueryRowContext(ctx,
		`SELECT id, owner, score, issued_at FROM badges WHERE id = $1`, int64(badgeID)))
}

func (s *Postgres) FindByOwner(ctx context.Context, owner id.Account) (*models.Badge, error) {
	return s.scanBadge(s.db.QueryRowContext(ctx,
		`SELECT id, owner, score, issued_at FROM badges WHERE owner = $1`, owner.String()))
}

func (s *Postgres) Has(ctx context.Context, owner id.Account) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM badges WHERE owner = $1)`, owner.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check badge ownership: %w", err)
	}
	return exists, nil
}

func (s *Postgres) UpdateScore(ctx context.Context, badgeID id.BadgeID, score uint) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE badges SET score = $1 WHERE id = $2`, int64(score), int64(badgeID))
	if err != nil {
		return fmt.Errorf("update badge score: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update badge score: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) Total(ctx context.Context) (uint64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT next_badge_id FROM registry_state`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("read issuance counter: %w", err)
	}
	return uint64(total), nil
}

func (s *Postgres) BaseURI(ctx context.Context) (string, error) {
	var uri string
	err := s.db.QueryRowContext(ctx, `SELECT base_uri FROM registry_state`).Scan(&uri)
	if err != nil {
		return "", fmt.Errorf("read base uri: %w", err)
	}
	return uri, nil
}

func (s *Postgres) SetBaseURI(ctx context.Context, uri string) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE registry_state SET base_uri = $1`, uri); err != nil {
		return fmt.Errorf("set base uri: %w", err)
	}
	return nil
}

func (s *Postgres) scanBadge(row *sql.Row) (*models.Badge, error) {
	var (
		badgeID  int64
		owner    string
		score    int64
		issuedAt time.Time
	)
	if err := row.Scan(&badgeID, &owner, &score, &issuedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan badge: %w", err)
	}
	return &models.Badge{
		ID:       id.BadgeID(badgeID),
		Owner:    id.Account(owner),
		Score:    uint(score),
		IssuedAt: issuedAt,
	}, nil
}
