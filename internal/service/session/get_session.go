package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// GetSession returns the session with its couple and interviews, provided
// the caller is a member of the owning couple.
func (s *Service) GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*domain.SessionDetail, error) {
	detail, err := s.ensureSessionAccess(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("session.GetSession: %w", err)
	}
	return detail, nil
}

// GetAllSessions returns every session of the caller's couple, most recent
// first, each with its interviews attached.
func (s *Service) GetAllSessions(ctx context.Context, userID uuid.UUID) ([]domain.SessionDetail, error) {
	couple, err := s.couples.GetByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session.GetAllSessions: %w", err)
	}

	sessions, err := s.sessions.ListByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("session.GetAllSessions: %w", err)
	}

	details := make([]domain.SessionDetail, 0, len(sessions))
	for i := range sessions {
		interviews, err := s.interviews.ListBySession(ctx, sessions[i].ID)
		if err != nil {
			return nil, fmt.Errorf("session.GetAllSessions: load interviews: %w", err)
		}
		details = append(details, domain.SessionDetail{
			Session:    sessions[i],
			Couple:     *couple,
			Interviews: interviews,
		})
	}
	return details, nil
}
