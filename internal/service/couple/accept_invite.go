package couple

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// AcceptInvite consumes an outstanding invite token, filling the partner
// slot and clearing the token.
//
// Returns ErrNotFound for a token that was never issued or already consumed,
// ErrConflict for self-acceptance, an invite already taken by someone else,
// or a caller who belongs to a different couple.
func (s *Service) AcceptInvite(ctx context.Context, userID uuid.UUID, inviteToken string) (*domain.CoupleWithMembers, error) {
	if inviteToken == "" {
		return nil, domain.NewValidationError("inviteToken", "required")
	}

	var result *domain.Couple

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		invite, err := s.couples.GetByInviteToken(txCtx, inviteToken)
		if err != nil {
			// Unknown or already-consumed tokens read the same way.
			return fmt.Errorf("find invite: %w", err)
		}

		if invite.UserAID == userID {
			return domain.NewConflictError("cannot accept your own invite")
		}
		if invite.UserBID != nil && *invite.UserBID != userID {
			return domain.NewConflictError("invite already accepted by another user")
		}

		own, err := s.couples.GetByMember(txCtx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find caller's couple: %w", err)
		}
		if own != nil && own.ID != invite.ID {
			return domain.NewConflictError("user is already part of another couple")
		}

		updated, err := s.couples.SetPartner(txCtx, invite.ID, userID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				// Lost the race: the slot filled between read and write.
				return domain.NewConflictError("invite already accepted by another user")
			case errors.Is(err, domain.ErrAlreadyExists):
				return domain.NewConflictError("user is already part of another couple")
			}
			return fmt.Errorf("accept invite: %w", err)
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couple.AcceptInvite: %w", err)
	}

	s.log.InfoContext(ctx, "invite accepted",
		slog.String("couple_id", result.ID.String()),
		slog.String("user_id", userID.String()))

	return s.withMembers(ctx, result)
}
