package ftracker

import (
	"errors"
)

var (
	// ErrUnknownWorkoutType indicates a workout code missing from the package table
	ErrUnknownWorkoutType = errors.New("unrecognized workout type")
	// ErrMalformedRecord indicates a record that cannot be parsed from its text form
	ErrMalformedRecord = errors.New("malformed workout record")
)
