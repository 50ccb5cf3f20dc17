package models

// OutcomeKind tells a finished submit attempt apart.
type OutcomeKind int

const (
	// Rejected means validation failed locally and nothing was sent.
	Rejected OutcomeKind = iota
	// Failure means a request was made (or attempted) and did not succeed.
	Failure
	// Success means the service accepted the request.
	Success
)

func (k OutcomeKind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case Failure:
		return "failure"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome is what a submit attempt ended with. Message is the text shown to
// the user; Session is set only for a successful sign-in.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Session *Session
}
