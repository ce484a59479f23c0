package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accordapp/accord-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCouple creates two users paired into a couple with the agreement signed.
// Returns the couple and both member users.
func SeedCouple(t *testing.T, pool *pgxpool.Pool) (domain.Couple, domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()

	userA := SeedUser(t, pool)
	userB := SeedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	couple := domain.Couple{
		ID:                uuid.New(),
		UserAID:           userA.ID,
		UserBID:           &userB.ID,
		AgreementSignedAt: &now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO couples (id, user_a_id, user_b_id, agreement_signed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		couple.ID, couple.UserAID, couple.UserBID, couple.AgreementSignedAt, couple.CreatedAt, couple.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCouple insert couple: %v", err)
	}

	return couple, userA, userB
}

// SeedSession creates a session for the given couple with the given status.
func SeedSession(t *testing.T, pool *pgxpool.Pool, couple domain.Couple, status domain.SessionStatus) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := "Test topic " + uniqueSuffix()
	session := domain.Session{
		ID:          uuid.New(),
		CoupleID:    couple.ID,
		Status:      status,
		InitiatedBy: couple.UserAID,
		Topic:       &topic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, couple_id, status, initiated_by, topic, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.CoupleID, string(session.Status), session.InitiatedBy, session.Topic,
		session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return session
}
