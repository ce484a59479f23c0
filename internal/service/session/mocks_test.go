package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc            func(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetActiveByCoupleFunc func(ctx context.Context, coupleID uuid.UUID) (*domain.Session, error)
	ListByCoupleFunc      func(ctx context.Context, coupleID uuid.UUID) ([]domain.Session, error)
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.Session, error)

	calls struct {
		Create            []struct{ S *domain.Session }
		GetByID           []struct{ ID uuid.UUID }
		GetActiveByCouple []struct{ CoupleID uuid.UUID }
		ListByCouple      []struct{ CoupleID uuid.UUID }
		UpdateStatus      []struct {
			ID     uuid.UUID
			Status domain.SessionStatus
		}
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ S *domain.Session }{s})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetActiveByCouple(ctx context.Context, coupleID uuid.UUID) (*domain.Session, error) {
	if mock.GetActiveByCoupleFunc == nil {
		panic("sessionRepoMock.GetActiveByCoupleFunc: method is nil but sessionRepo.GetActiveByCouple was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActiveByCouple = append(mock.calls.GetActiveByCouple, struct{ CoupleID uuid.UUID }{coupleID})
	mock.lock.Unlock()
	return mock.GetActiveByCoupleFunc(ctx, coupleID)
}

func (mock *sessionRepoMock) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]domain.Session, error) {
	if mock.ListByCoupleFunc == nil {
		panic("sessionRepoMock.ListByCoupleFunc: method is nil but sessionRepo.ListByCouple was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByCouple = append(mock.calls.ListByCouple, struct{ CoupleID uuid.UUID }{coupleID})
	mock.lock.Unlock()
	return mock.ListByCoupleFunc(ctx, coupleID)
}

func (mock *sessionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.Session, error) {
	if mock.UpdateStatusFunc == nil {
		panic("sessionRepoMock.UpdateStatusFunc: method is nil but sessionRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		ID     uuid.UUID
		Status domain.SessionStatus
	}{id, status})
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ S *domain.Session } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.SessionStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStatus
}

var _ interviewRepo = &interviewRepoMock{}

type interviewRepoMock struct {
	CreateFunc              func(ctx context.Context, iv *domain.Interview) (*domain.Interview, error)
	GetBySessionAndUserFunc func(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Interview, error)
	ListBySessionFunc       func(ctx context.Context, sessionID uuid.UUID) ([]domain.Interview, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, responses map[string]any, notes *string, completedAt time.Time) (*domain.Interview, error)

	calls struct {
		Create              []struct{ IV *domain.Interview }
		GetBySessionAndUser []struct {
			SessionID uuid.UUID
			UserID    uuid.UUID
		}
		ListBySession []struct{ SessionID uuid.UUID }
		Update        []struct {
			ID          uuid.UUID
			Responses   map[string]any
			Notes       *string
			CompletedAt time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *interviewRepoMock) Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error) {
	if mock.CreateFunc == nil {
		panic("interviewRepoMock.CreateFunc: method is nil but interviewRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ IV *domain.Interview }{iv})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, iv)
}

func (mock *interviewRepoMock) GetBySessionAndUser(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Interview, error) {
	if mock.GetBySessionAndUserFunc == nil {
		panic("interviewRepoMock.GetBySessionAndUserFunc: method is nil but interviewRepo.GetBySessionAndUser was just called")
	}
	mock.lock.Lock()
	mock.calls.GetBySessionAndUser = append(mock.calls.GetBySessionAndUser, struct {
		SessionID uuid.UUID
		UserID    uuid.UUID
	}{sessionID, userID})
	mock.lock.Unlock()
	return mock.GetBySessionAndUserFunc(ctx, sessionID, userID)
}

func (mock *interviewRepoMock) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Interview, error) {
	if mock.ListBySessionFunc == nil {
		panic("interviewRepoMock.ListBySessionFunc: method is nil but interviewRepo.ListBySession was just called")
	}
	mock.lock.Lock()
	mock.calls.ListBySession = append(mock.calls.ListBySession, struct{ SessionID uuid.UUID }{sessionID})
	mock.lock.Unlock()
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *interviewRepoMock) Update(ctx context.Context, id uuid.UUID, responses map[string]any, notes *string, completedAt time.Time) (*domain.Interview, error) {
	if mock.UpdateFunc == nil {
		panic("interviewRepoMock.UpdateFunc: method is nil but interviewRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID          uuid.UUID
		Responses   map[string]any
		Notes       *string
		CompletedAt time.Time
	}{id, responses, notes, completedAt})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, responses, notes, completedAt)
}

func (mock *interviewRepoMock) CreateCalls() []struct{ IV *domain.Interview } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *interviewRepoMock) UpdateCalls() []struct {
	ID          uuid.UUID
	Responses   map[string]any
	Notes       *string
	CompletedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

var _ coupleRepo = &coupleRepoMock{}

type coupleRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetByMemberFunc func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)

	calls struct {
		GetByID     []struct{ ID uuid.UUID }
		GetByMember []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *coupleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	if mock.GetByIDFunc == nil {
		panic("coupleRepoMock.GetByIDFunc: method is nil but coupleRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *coupleRepoMock) GetByMember(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	if mock.GetByMemberFunc == nil {
		panic("coupleRepoMock.GetByMemberFunc: method is nil but coupleRepo.GetByMember was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByMember = append(mock.calls.GetByMember, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.GetByMemberFunc(ctx, userID)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, without a real transaction.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
