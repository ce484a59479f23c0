package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// StartSession opens a new mediation session for the caller's couple.
//
// The partner must have joined and the agreement must be signed, checked in
// that order. At most one non-terminal session may exist per couple; a
// terminal one does not block a new session.
func (s *Service) StartSession(ctx context.Context, userID uuid.UUID, input StartSessionInput) (*domain.SessionDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Session
	var couple *domain.Couple

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.couples.GetByMember(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find couple by member: %w", err)
		}
		couple = c

		if !couple.HasPartner() {
			return domain.NewConflictError("partner must join before starting a session")
		}
		if !couple.AgreementSigned() {
			return domain.NewConflictError("agreement must be signed before starting a session")
		}

		active, err := s.sessions.GetActiveByCouple(txCtx, couple.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find active session: %w", err)
		}
		if active != nil {
			return domain.NewConflictError("an active session already exists for this couple")
		}

		now := time.Now().UTC()
		created, err := s.sessions.Create(txCtx, &domain.Session{
			ID:          uuid.New(),
			CoupleID:    couple.ID,
			Status:      domain.SessionStatusInitiated,
			InitiatedBy: userID,
			Topic:       input.Topic,
			Context:     input.Context,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			// A concurrent start hit the one-active-session index first.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError("an active session already exists for this couple")
			}
			return fmt.Errorf("create session: %w", err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("session.StartSession: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", result.ID.String()),
		slog.String("couple_id", couple.ID.String()),
		slog.String("initiated_by", userID.String()))

	return s.loadDetail(ctx, result)
}
