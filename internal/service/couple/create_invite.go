package couple

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// CreateInvite issues an invite for the calling user.
//
// A user with no couple gets a fresh couple row holding a new token. An
// inviter whose partner has not joined yet gets the same row with a
// regenerated token, invalidating the previous one. A user who is already
// fully paired, in either slot, gets ErrConflict.
func (s *Service) CreateInvite(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error) {
	token := uuid.NewString()

	var result *domain.Couple

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.couples.GetByMember(txCtx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find couple by member: %w", err)
		}

		if existing != nil {
			// Allow regenerating the invite while the partner hasn't joined.
			if existing.UserAID == userID && !existing.HasPartner() {
				updated, err := s.couples.SetInviteToken(txCtx, existing.ID, token)
				if err != nil {
					return fmt.Errorf("regenerate invite token: %w", err)
				}
				result = updated
				return nil
			}
			return domain.NewConflictError("user is already part of a couple")
		}

		now := time.Now().UTC()
		created, err := s.couples.Create(txCtx, &domain.Couple{
			ID:          uuid.New(),
			UserAID:     userID,
			InviteToken: &token,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			// A concurrent invite for the same user hit the unique index first.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError("user is already part of a couple")
			}
			return fmt.Errorf("create couple: %w", err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couple.CreateInvite: %w", err)
	}

	s.log.InfoContext(ctx, "invite created",
		slog.String("couple_id", result.ID.String()),
		slog.String("user_id", userID.String()))

	return s.withMembers(ctx, result)
}
