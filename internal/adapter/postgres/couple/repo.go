// Package couple implements the Couple repository using PostgreSQL.
package couple

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/accordapp/accord-backend/internal/adapter/postgres"
	"github.com/accordapp/accord-backend/internal/domain"
)

// Repo provides couple persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new couple repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const coupleColumns = `id, user_a_id, user_b_id, invite_token, agreement_signed_at, created_at, updated_at`

const createSQL = `
INSERT INTO couples (id, user_a_id, invite_token, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + coupleColumns

const getByIDSQL = `
SELECT ` + coupleColumns + `
FROM couples
WHERE id = $1`

const getByMemberSQL = `
SELECT ` + coupleColumns + `
FROM couples
WHERE user_a_id = $1 OR user_b_id = $1`

const getByInviteTokenSQL = `
SELECT ` + coupleColumns + `
FROM couples
WHERE invite_token = $1`

const setInviteTokenSQL = `
UPDATE couples
SET invite_token = $2, updated_at = now()
WHERE id = $1
RETURNING ` + coupleColumns

const setPartnerSQL = `
UPDATE couples
SET user_b_id = $2, invite_token = NULL, updated_at = now()
WHERE id = $1 AND user_b_id IS NULL
RETURNING ` + coupleColumns

const signAgreementSQL = `
UPDATE couples
SET agreement_signed_at = $2, updated_at = now()
WHERE id = $1 AND agreement_signed_at IS NULL
RETURNING ` + coupleColumns

// Create inserts a new couple with an empty partner slot.
func (r *Repo) Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		c.ID, c.UserAID, c.InviteToken, c.CreatedAt, c.UpdatedAt)

	created, err := scanCouple(row)
	if err != nil {
		return nil, postgres.MapError(err, "couple", c.ID)
	}

	return created, nil
}

// GetByID returns a couple by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	return c, nil
}

// GetByMember returns the couple the given user belongs to, in either slot.
// Returns domain.ErrNotFound if the user is not part of any couple.
func (r *Repo) GetByMember(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, getByMemberSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "couple", uuid.Nil)
	}

	return c, nil
}

// GetByInviteToken returns the couple holding an outstanding invite token.
// Returns domain.ErrNotFound if the token was never issued or already consumed.
func (r *Repo) GetByInviteToken(ctx context.Context, token string) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, getByInviteTokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "couple", uuid.Nil)
	}

	return c, nil
}

// SetInviteToken replaces the invite token on an existing couple row.
func (r *Repo) SetInviteToken(ctx context.Context, id uuid.UUID, token string) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, setInviteTokenSQL, id, token))
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	return c, nil
}

// SetPartner fills the partner slot and clears the invite token in one write.
// The WHERE guard makes the acceptance race lose cleanly: a second writer
// matches no row and gets domain.ErrNotFound.
func (r *Repo) SetPartner(ctx context.Context, id, userBID uuid.UUID) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, setPartnerSQL, id, userBID))
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	return c, nil
}

// SignAgreement stamps agreement_signed_at once. A couple whose agreement is
// already signed matches no row and yields domain.ErrNotFound; callers treat
// that as the idempotent no-op it is.
func (r *Repo) SignAgreement(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Couple, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(querier.QueryRow(ctx, signAgreementSQL, id, at))
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	return c, nil
}

func scanCouple(row pgx.Row) (*domain.Couple, error) {
	var (
		c        domain.Couple
		userB    pgtype.UUID
		token    pgtype.Text
		signedAt pgtype.Timestamptz
	)
	if err := row.Scan(&c.ID, &c.UserAID, &userB, &token, &signedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if userB.Valid {
		id := uuid.UUID(userB.Bytes)
		c.UserBID = &id
	}
	if token.Valid {
		c.InviteToken = &token.String
	}
	if signedAt.Valid {
		c.AgreementSignedAt = &signedAt.Time
	}
	return &c, nil
}
