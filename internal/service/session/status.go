package session

import "github.com/accordapp/accord-backend/internal/domain"

// deriveStatus recomputes a session's status from the interviews on file.
//
// Both members interviewed moves the session to unpacking_ready, exactly one
// moves it to in_progress, none leaves it as is. The rule never moves status
// backward: unpacking_ready and later stages are kept once reached, and
// reconnection, resolved and abandoned are only ever set by an explicit
// update.
func deriveStatus(current domain.SessionStatus, couple *domain.Couple, interviews []domain.Interview) domain.SessionStatus {
	var hasA, hasB bool
	for _, iv := range interviews {
		if iv.UserID == couple.UserAID {
			hasA = true
		}
		if couple.UserBID != nil && iv.UserID == *couple.UserBID {
			hasB = true
		}
	}

	switch {
	case hasA && hasB:
		if current == domain.SessionStatusInitiated || current == domain.SessionStatusInProgress {
			return domain.SessionStatusUnpackingReady
		}
	case hasA || hasB:
		if current == domain.SessionStatusInitiated {
			return domain.SessionStatusInProgress
		}
	}
	return current
}
