package scenario

import "errors"

var (
	// ErrUnknownOp is returned for a step whose op is not recognized.
	ErrUnknownOp = errors.New("unknown op")
	// ErrInvalidStep is returned when a step cannot be decoded.
	ErrInvalidStep = errors.New("invalid step")
	// ErrNoList is returned when a step runs before any create step.
	ErrNoList = errors.New("no list created")
)
