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

// SignAgreement stamps the couple's mediation agreement.
//
// The partner must have joined first. Signing is irreversible and
// idempotent: a couple whose agreement is already signed is returned
// unchanged, keeping the original timestamp.
func (s *Service) SignAgreement(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error) {
	c, err := s.couples.GetByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("couple.SignAgreement: %w", err)
	}

	if !c.HasPartner() {
		return nil, domain.NewConflictError("partner must join before signing the agreement")
	}

	if c.AgreementSigned() {
		return s.withMembers(ctx, c)
	}

	signed, err := s.couples.SignAgreement(ctx, c.ID, time.Now().UTC())
	if err != nil {
		// A concurrent signer won; the stored timestamp stands.
		if errors.Is(err, domain.ErrNotFound) {
			current, err := s.couples.GetByID(ctx, c.ID)
			if err != nil {
				return nil, fmt.Errorf("couple.SignAgreement reload: %w", err)
			}
			return s.withMembers(ctx, current)
		}
		return nil, fmt.Errorf("couple.SignAgreement: %w", err)
	}

	s.log.InfoContext(ctx, "agreement signed",
		slog.String("couple_id", signed.ID.String()),
		slog.String("user_id", userID.String()))

	return s.withMembers(ctx, signed)
}
