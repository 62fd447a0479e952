package acquisition

import "errors"

// Session errors.
var (
	ErrAlreadyAcquiring = errors.New("acquisition already started")
	ErrNotAcquiring     = errors.New("acquisition not started")
	ErrFrameTimeout     = errors.New("frame timeout")
	ErrInvalidOptions   = errors.New("invalid acquisition options")
)

// State is the acquisition state of a session.
type State uint8

const (
	// StateIdle - no stream is open. Initial and terminal state.
	StateIdle State = iota

	// StateAcquiring - the stream is open and frames can be retrieved.
	StateAcquiring
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateAcquiring:
		return "ACQUIRING"
	default:
		return "UNKNOWN"
	}
}
