package session

import "github.com/accordapp/accord-backend/internal/domain"

const (
	maxTopicLen   = 200
	maxContextLen = 500
)

// StartSessionInput carries the optional framing for a new session. Both
// fields are stored verbatim, with no defaulting.
type StartSessionInput struct {
	Topic   *string
	Context *string
}

// Validate checks field lengths.
func (in StartSessionInput) Validate() error {
	if in.Topic != nil && len(*in.Topic) > maxTopicLen {
		return domain.NewValidationError("topic", "must be at most 200 characters")
	}
	if in.Context != nil && len(*in.Context) > maxContextLen {
		return domain.NewValidationError("context", "must be at most 500 characters")
	}
	return nil
}

// SubmitInterviewInput carries one partner's interview answers.
type SubmitInterviewInput struct {
	Responses map[string]any
	Notes     *string
}

// Validate checks that the submission carries answers.
func (in SubmitInterviewInput) Validate() error {
	if len(in.Responses) == 0 {
		return domain.NewValidationError("responses", "required")
	}
	return nil
}

// SubmitInterviewResult pairs the written interview with the session state
// after status recomputation.
type SubmitInterviewResult struct {
	Interview *domain.Interview
	Session   *domain.SessionDetail
}
