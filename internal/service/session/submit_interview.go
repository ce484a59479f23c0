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

// SubmitInterview records one partner's interview for the session, creating
// the row on first submission and overwriting it on resubmission, then
// recomputes the session status from the interviews on file.
func (s *Service) SubmitInterview(ctx context.Context, sessionID, userID uuid.UUID, input SubmitInterviewInput) (*SubmitInterviewResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var written *domain.Interview
	var detail *domain.SessionDetail

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.ensureSessionAccess(txCtx, sessionID, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		existing, err := s.interviews.GetBySessionAndUser(txCtx, sessionID, userID)
		switch {
		case err == nil:
			written, err = s.interviews.Update(txCtx, existing.ID, input.Responses, input.Notes, now)
			if err != nil {
				return fmt.Errorf("update interview: %w", err)
			}
		case errors.Is(err, domain.ErrNotFound):
			written, err = s.interviews.Create(txCtx, &domain.Interview{
				ID:          uuid.New(),
				SessionID:   sessionID,
				UserID:      userID,
				Responses:   input.Responses,
				Notes:       input.Notes,
				CompletedAt: now,
				CreatedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("create interview: %w", err)
			}
		default:
			return fmt.Errorf("find interview: %w", err)
		}

		interviews, err := s.interviews.ListBySession(txCtx, sessionID)
		if err != nil {
			return fmt.Errorf("load interviews: %w", err)
		}

		derived := deriveStatus(d.Status, &d.Couple, interviews)
		if derived != d.Status {
			updated, err := s.sessions.UpdateStatus(txCtx, sessionID, derived)
			if err != nil {
				return fmt.Errorf("update session status: %w", err)
			}
			d.Session = *updated
		}
		d.Interviews = interviews
		detail = d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("session.SubmitInterview: %w", err)
	}

	s.log.InfoContext(ctx, "interview submitted",
		slog.String("session_id", sessionID.String()),
		slog.String("user_id", userID.String()),
		slog.String("status", detail.Status.String()))

	return &SubmitInterviewResult{Interview: written, Session: detail}, nil
}
