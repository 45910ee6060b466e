package dme

import "errors"

// ErrEmptyInput is returned when BuildClockTree is called with zero sinks.
var ErrEmptyInput = errors.New("dme: need at least one sink")
