package couple

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// GetCoupleForUser returns the couple the calling user belongs to, with both
// members' public fields resolved. Returns ErrNotFound if the user has none.
func (s *Service) GetCoupleForUser(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error) {
	c, err := s.couples.GetByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("couple.GetCoupleForUser: %w", err)
	}
	return s.withMembers(ctx, c)
}
