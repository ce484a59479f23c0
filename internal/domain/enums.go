package domain

// SessionStatus represents the state of a mediation session.
//
// Normal progression is initiated → in_progress → unpacking_ready →
// reconnection → resolved/abandoned. The first two transitions are derived
// from interview completion; the rest happen via explicit status updates.
type SessionStatus string

const (
	SessionStatusInitiated      SessionStatus = "initiated"
	SessionStatusInProgress     SessionStatus = "in_progress"
	SessionStatusUnpackingReady SessionStatus = "unpacking_ready"
	SessionStatusReconnection   SessionStatus = "reconnection"
	SessionStatusResolved       SessionStatus = "resolved"
	SessionStatusAbandoned      SessionStatus = "abandoned"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusInitiated, SessionStatusInProgress, SessionStatusUnpackingReady,
		SessionStatusReconnection, SessionStatusResolved, SessionStatusAbandoned:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that end a session. A terminal
// session never changes status again and does not block starting a new one.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusResolved || s == SessionStatusAbandoned
}
