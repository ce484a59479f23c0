// Package session implements the mediation session lifecycle: starting
// sessions, collecting both partners' interviews, and driving the session
// status machine.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by the service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetActiveByCouple(ctx context.Context, coupleID uuid.UUID) (*domain.Session, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]domain.Session, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.Session, error)
}

// interviewRepo defines the interview repository interface needed by the service.
type interviewRepo interface {
	Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error)
	GetBySessionAndUser(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Interview, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Interview, error)
	Update(ctx context.Context, id uuid.UUID, responses map[string]any, notes *string, completedAt time.Time) (*domain.Interview, error)
}

// coupleRepo defines the couple lookups needed to scope sessions to members.
type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetByMember(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements mediation session operations.
type Service struct {
	log        *slog.Logger
	sessions   sessionRepo
	interviews interviewRepo
	couples    coupleRepo
	tx         txManager
}

// NewService creates a new session service instance.
func NewService(logger *slog.Logger, sessions sessionRepo, interviews interviewRepo, couples coupleRepo, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "session"),
		sessions:   sessions,
		interviews: interviews,
		couples:    couples,
		tx:         tx,
	}
}

// loadDetail assembles a session with its couple and interviews.
func (s *Service) loadDetail(ctx context.Context, sess *domain.Session) (*domain.SessionDetail, error) {
	couple, err := s.couples.GetByID(ctx, sess.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("load couple: %w", err)
	}

	interviews, err := s.interviews.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load interviews: %w", err)
	}

	return &domain.SessionDetail{
		Session:    *sess,
		Couple:     *couple,
		Interviews: interviews,
	}, nil
}

// ensureSessionAccess loads the session with its couple and interviews and
// checks that userID is a member of the owning couple. Returns ErrNotFound
// for an unknown session and ErrForbidden for a non-member.
func (s *Service) ensureSessionAccess(ctx context.Context, sessionID, userID uuid.UUID) (*domain.SessionDetail, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	detail, err := s.loadDetail(ctx, sess)
	if err != nil {
		return nil, err
	}

	if !detail.Couple.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of the session's couple: %w", userID, domain.ErrForbidden)
	}

	return detail, nil
}
