package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one mediation engagement owned by a couple. A couple has at
// most one session with a non-terminal status at any time.
type Session struct {
	ID          uuid.UUID
	CoupleID    uuid.UUID
	Status      SessionStatus
	InitiatedBy uuid.UUID
	Topic       *string
	Context     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Interview holds one partner's responses for a session. There is at most
// one interview per (session, user); resubmission overwrites it.
type Interview struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	UserID      uuid.UUID
	Responses   map[string]any
	Notes       *string
	CompletedAt time.Time
	CreatedAt   time.Time
}

// SessionDetail is a session loaded with its couple and interviews, the
// shape every session-scoped operation works against.
type SessionDetail struct {
	Session
	Couple     Couple
	Interviews []Interview
}

// HasInterviewBy reports whether any loaded interview belongs to userID.
func (d *SessionDetail) HasInterviewBy(userID uuid.UUID) bool {
	for _, iv := range d.Interviews {
		if iv.UserID == userID {
			return true
		}
	}
	return false
}

// PartnerStatus describes which members have completed their interview.
type PartnerStatus struct {
	UserAID       uuid.UUID
	UserBID       *uuid.UUID
	UserAComplete bool
	UserBComplete bool
}

// SessionStatusReport is the payload returned by the status endpoint.
type SessionStatusReport struct {
	SessionID uuid.UUID
	Status    SessionStatus
	Partners  PartnerStatus
}
