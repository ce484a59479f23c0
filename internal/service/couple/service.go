// Package couple implements the pairing lifecycle: invite creation and
// acceptance, agreement signing, and couple lookup by member.
package couple

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// coupleRepo defines the couple repository interface needed by the service.
type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetByMember(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetByInviteToken(ctx context.Context, token string) (*domain.Couple, error)
	Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error)
	SetInviteToken(ctx context.Context, id uuid.UUID, token string) (*domain.Couple, error)
	SetPartner(ctx context.Context, id, userBID uuid.UUID) (*domain.Couple, error)
	SignAgreement(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Couple, error)
}

// userDirectory defines the user lookup interface needed to project the
// public fields of both members into couple payloads.
type userDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements pairing operations.
type Service struct {
	log     *slog.Logger
	couples coupleRepo
	users   userDirectory
	tx      txManager
}

// NewService creates a new couple service instance.
func NewService(logger *slog.Logger, couples coupleRepo, users userDirectory, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "couple"),
		couples: couples,
		users:   users,
		tx:      tx,
	}
}

// withMembers resolves the public fields of both members from the directory.
func (s *Service) withMembers(ctx context.Context, c *domain.Couple) (*domain.CoupleWithMembers, error) {
	userA, err := s.users.GetByID(ctx, c.UserAID)
	if err != nil {
		return nil, fmt.Errorf("resolve user A: %w", err)
	}

	result := &domain.CoupleWithMembers{
		Couple: *c,
		UserA:  userA.Public(),
	}

	if c.UserBID != nil {
		userB, err := s.users.GetByID(ctx, *c.UserBID)
		if err != nil {
			return nil, fmt.Errorf("resolve user B: %w", err)
		}
		public := userB.Public()
		result.UserB = &public
	}

	return result, nil
}
