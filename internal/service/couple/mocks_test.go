package couple

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
)

var _ coupleRepo = &coupleRepoMock{}

type coupleRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetByMemberFunc      func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetByInviteTokenFunc func(ctx context.Context, token string) (*domain.Couple, error)
	CreateFunc           func(ctx context.Context, c *domain.Couple) (*domain.Couple, error)
	SetInviteTokenFunc   func(ctx context.Context, id uuid.UUID, token string) (*domain.Couple, error)
	SetPartnerFunc       func(ctx context.Context, id, userBID uuid.UUID) (*domain.Couple, error)
	SignAgreementFunc    func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Couple, error)

	calls struct {
		GetByID          []struct{ ID uuid.UUID }
		GetByMember      []struct{ UserID uuid.UUID }
		GetByInviteToken []struct{ Token string }
		Create           []struct{ C *domain.Couple }
		SetInviteToken   []struct {
			ID    uuid.UUID
			Token string
		}
		SetPartner []struct {
			ID      uuid.UUID
			UserBID uuid.UUID
		}
		SignAgreement []struct {
			ID uuid.UUID
			At time.Time
		}
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

func (mock *coupleRepoMock) GetByInviteToken(ctx context.Context, token string) (*domain.Couple, error) {
	if mock.GetByInviteTokenFunc == nil {
		panic("coupleRepoMock.GetByInviteTokenFunc: method is nil but coupleRepo.GetByInviteToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByInviteToken = append(mock.calls.GetByInviteToken, struct{ Token string }{token})
	mock.lock.Unlock()
	return mock.GetByInviteTokenFunc(ctx, token)
}

func (mock *coupleRepoMock) Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error) {
	if mock.CreateFunc == nil {
		panic("coupleRepoMock.CreateFunc: method is nil but coupleRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ C *domain.Couple }{c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *coupleRepoMock) SetInviteToken(ctx context.Context, id uuid.UUID, token string) (*domain.Couple, error) {
	if mock.SetInviteTokenFunc == nil {
		panic("coupleRepoMock.SetInviteTokenFunc: method is nil but coupleRepo.SetInviteToken was just called")
	}
	mock.lock.Lock()
	mock.calls.SetInviteToken = append(mock.calls.SetInviteToken, struct {
		ID    uuid.UUID
		Token string
	}{id, token})
	mock.lock.Unlock()
	return mock.SetInviteTokenFunc(ctx, id, token)
}

func (mock *coupleRepoMock) SetPartner(ctx context.Context, id, userBID uuid.UUID) (*domain.Couple, error) {
	if mock.SetPartnerFunc == nil {
		panic("coupleRepoMock.SetPartnerFunc: method is nil but coupleRepo.SetPartner was just called")
	}
	mock.lock.Lock()
	mock.calls.SetPartner = append(mock.calls.SetPartner, struct {
		ID      uuid.UUID
		UserBID uuid.UUID
	}{id, userBID})
	mock.lock.Unlock()
	return mock.SetPartnerFunc(ctx, id, userBID)
}

func (mock *coupleRepoMock) SignAgreement(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Couple, error) {
	if mock.SignAgreementFunc == nil {
		panic("coupleRepoMock.SignAgreementFunc: method is nil but coupleRepo.SignAgreement was just called")
	}
	mock.lock.Lock()
	mock.calls.SignAgreement = append(mock.calls.SignAgreement, struct {
		ID uuid.UUID
		At time.Time
	}{id, at})
	mock.lock.Unlock()
	return mock.SignAgreementFunc(ctx, id, at)
}

func (mock *coupleRepoMock) CreateCalls() []struct{ C *domain.Couple } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *coupleRepoMock) SetInviteTokenCalls() []struct {
	ID    uuid.UUID
	Token string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetInviteToken
}

func (mock *coupleRepoMock) SetPartnerCalls() []struct {
	ID      uuid.UUID
	UserBID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetPartner
}

func (mock *coupleRepoMock) SignAgreementCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SignAgreement
}

var _ userDirectory = &userDirectoryMock{}

type userDirectoryMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *userDirectoryMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userDirectoryMock.GetByIDFunc: method is nil but userDirectory.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userDirectoryMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, without a real transaction.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
