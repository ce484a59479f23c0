// Package session implements the mediation Session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/accordapp/accord-backend/internal/adapter/postgres"
	"github.com/accordapp/accord-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, couple_id, status, initiated_by, topic, context, created_at, updated_at`

const createSQL = `
INSERT INTO sessions (id, couple_id, status, initiated_by, topic, context, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const getActiveByCoupleSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE couple_id = $1 AND status NOT IN ('resolved', 'abandoned')`

const listByCoupleSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE couple_id = $1
ORDER BY created_at DESC`

const updateStatusSQL = `
UPDATE sessions
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + sessionColumns

// Create inserts a new session. The partial unique index on active sessions
// surfaces a concurrent start as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		s.ID, s.CoupleID, s.Status, s.InitiatedBy, s.Topic, s.Context, s.CreatedAt, s.UpdatedAt)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}

	return created, nil
}

// GetByID returns a session by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return s, nil
}

// GetActiveByCouple returns the couple's session whose status is outside the
// terminal set. Returns domain.ErrNotFound when every session is terminal.
func (r *Repo) GetActiveByCouple(ctx context.Context, coupleID uuid.UUID) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getActiveByCoupleSQL, coupleID))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}

	return s, nil
}

// ListByCouple returns every session for a couple, most recent first.
func (r *Repo) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCoupleSQL, coupleID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by couple: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, postgres.MapError(err, "session", uuid.Nil)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// UpdateStatus persists a new status value for the session.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, updateStatusSQL, id, status))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return s, nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s       domain.Session
		status  string
		topic   pgtype.Text
		context pgtype.Text
	)
	if err := row.Scan(&s.ID, &s.CoupleID, &status, &s.InitiatedBy, &topic, &context, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = domain.SessionStatus(status)
	if topic.Valid {
		s.Topic = &topic.String
	}
	if context.Valid {
		s.Context = &context.String
	}
	return &s, nil
}
