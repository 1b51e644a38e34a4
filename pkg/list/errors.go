package list

import "errors"

// ErrEmptyList is returned when an operation needs at least one node.
var ErrEmptyList = errors.New("empty list")
