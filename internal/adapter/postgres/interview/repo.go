// Package interview implements the Interview repository using PostgreSQL.
// Queries use raw SQL since the responses column is JSONB requiring custom
// marshal/unmarshal logic.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/accordapp/accord-backend/internal/adapter/postgres"
	"github.com/accordapp/accord-backend/internal/domain"
)

// Repo provides interview persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interview repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const interviewColumns = `id, session_id, user_id, responses, notes, completed_at, created_at`

const createSQL = `
INSERT INTO interviews (id, session_id, user_id, responses, notes, completed_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + interviewColumns

const getBySessionAndUserSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE session_id = $1 AND user_id = $2`

const listBySessionSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE session_id = $1
ORDER BY created_at ASC`

const updateSQL = `
UPDATE interviews
SET responses = $2, notes = $3, completed_at = $4
WHERE id = $1
RETURNING ` + interviewColumns

// Create inserts a new interview row. The (session_id, user_id) unique
// constraint surfaces a concurrent first submission as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	responses, err := json.Marshal(iv.Responses)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}

	row := querier.QueryRow(ctx, createSQL,
		iv.ID, iv.SessionID, iv.UserID, responses, iv.Notes, iv.CompletedAt, iv.CreatedAt)

	created, err := scanInterview(row)
	if err != nil {
		return nil, postgres.MapError(err, "interview", iv.ID)
	}

	return created, nil
}

// GetBySessionAndUser returns the interview one partner submitted for a session.
func (r *Repo) GetBySessionAndUser(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	iv, err := scanInterview(querier.QueryRow(ctx, getBySessionAndUserSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "interview", uuid.Nil)
	}

	return iv, nil
}

// ListBySession returns all interviews for a session, oldest first.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list interviews by session: %w", err)
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, postgres.MapError(err, "interview", uuid.Nil)
		}
		interviews = append(interviews, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}

	return interviews, nil
}

// Update overwrites responses, notes, and completed_at on resubmission.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, responses map[string]any, notes *string, completedAt time.Time) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	encoded, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}

	iv, err := scanInterview(querier.QueryRow(ctx, updateSQL, id, encoded, notes, completedAt))
	if err != nil {
		return nil, postgres.MapError(err, "interview", id)
	}

	return iv, nil
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var (
		iv        domain.Interview
		responses []byte
		notes     pgtype.Text
	)
	if err := row.Scan(&iv.ID, &iv.SessionID, &iv.UserID, &responses, &notes, &iv.CompletedAt, &iv.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(responses, &iv.Responses); err != nil {
		return nil, fmt.Errorf("unmarshal responses: %w", err)
	}
	if notes.Valid {
		iv.Notes = &notes.String
	}
	return &iv, nil
}
