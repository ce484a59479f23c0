package domain

import (
	"time"

	"github.com/google/uuid"
)

// Couple represents a pairing between exactly two users. UserBID stays nil
// until the partner accepts the invite; InviteToken is present only while
// the couple is waiting for that acceptance.
type Couple struct {
	ID                uuid.UUID
	UserAID           uuid.UUID
	UserBID           *uuid.UUID
	InviteToken       *string
	AgreementSignedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsMember reports whether the given user occupies either slot.
func (c *Couple) IsMember(userID uuid.UUID) bool {
	if c.UserAID == userID {
		return true
	}
	return c.UserBID != nil && *c.UserBID == userID
}

// HasPartner reports whether the invite has been accepted.
func (c *Couple) HasPartner() bool {
	return c.UserBID != nil
}

// AgreementSigned reports whether the mediation agreement has been signed.
func (c *Couple) AgreementSigned() bool {
	return c.AgreementSignedAt != nil
}

// CoupleWithMembers is a Couple with the public fields of both members
// resolved from the user directory. UserB is nil until the partner joins.
type CoupleWithMembers struct {
	Couple
	UserA PublicUser
	UserB *PublicUser
}
