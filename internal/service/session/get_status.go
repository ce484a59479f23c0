package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// GetSessionStatus reports the session status and which members have
// completed their interview.
func (s *Service) GetSessionStatus(ctx context.Context, sessionID, userID uuid.UUID) (*domain.SessionStatusReport, error) {
	detail, err := s.ensureSessionAccess(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("session.GetSessionStatus: %w", err)
	}

	partners := domain.PartnerStatus{
		UserAID:       detail.Couple.UserAID,
		UserBID:       detail.Couple.UserBID,
		UserAComplete: detail.HasInterviewBy(detail.Couple.UserAID),
	}
	if detail.Couple.UserBID != nil {
		partners.UserBComplete = detail.HasInterviewBy(*detail.Couple.UserBID)
	}

	return &domain.SessionStatusReport{
		SessionID: detail.ID,
		Status:    detail.Status,
		Partners:  partners,
	}, nil
}
