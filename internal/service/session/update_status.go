package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// UpdateSessionStatus sets the session status explicitly.
//
// The new value must be one of the recognized statuses. A terminal session
// only accepts its current value, as a no-op write. No other transition
// restriction applies: any non-terminal session may jump to any valid
// status.
func (s *Service) UpdateSessionStatus(ctx context.Context, sessionID, userID uuid.UUID, newStatus domain.SessionStatus) (*domain.SessionDetail, error) {
	if !newStatus.IsValid() {
		return nil, domain.NewConflictError(fmt.Sprintf("unknown session status %q", newStatus))
	}

	var detail *domain.SessionDetail

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.ensureSessionAccess(txCtx, sessionID, userID)
		if err != nil {
			return err
		}

		if d.Status.IsTerminal() && newStatus != d.Status {
			return domain.NewConflictError(fmt.Sprintf("session is %s and cannot change status", d.Status))
		}

		updated, err := s.sessions.UpdateStatus(txCtx, sessionID, newStatus)
		if err != nil {
			return fmt.Errorf("update session status: %w", err)
		}
		d.Session = *updated
		detail = d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("session.UpdateSessionStatus: %w", err)
	}

	s.log.InfoContext(ctx, "session status updated",
		slog.String("session_id", sessionID.String()),
		slog.String("status", newStatus.String()),
		slog.String("user_id", userID.String()))

	return detail, nil
}
