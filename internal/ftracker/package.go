package ftracker

import (
	"fmt"
	"math"
)

// WorkoutCode is a short workout type code sent by the sensor unit.
type WorkoutCode string

const (
	CodeSwimming      WorkoutCode = "SWM"
	CodeRunning       WorkoutCode = "RUN"
	CodeSportsWalking WorkoutCode = "WLK"
)

type constructor struct {
	arity int
	build func(data []float64) (Workout, error)
}

var constructors = map[WorkoutCode]constructor{
	CodeSwimming: {
		arity: 5,
		build: func(data []float64) (Workout, error) {
			action, err := integer("action", data[0])
			if err != nil {
				return nil, err
			}
			countPool, err := integer("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], countPool), nil
		},
	},
	CodeRunning: {
		arity: 3,
		build: func(data []float64) (Workout, error) {
			action, err := integer("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2]), nil
		},
	},
	CodeSportsWalking: {
		arity: 4,
		build: func(data []float64) (Workout, error) {
			action, err := integer("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3]), nil
		},
	},
}

// WorkoutCodes returns all known workout codes.
func WorkoutCodes() []WorkoutCode {
	return []WorkoutCode{CodeSwimming, CodeRunning, CodeSportsWalking}
}

// Arity returns the number of readings expected for code.
func Arity(code WorkoutCode) (int, bool) {
	c, ok := constructors[code]
	return c.arity, ok
}

// ReadPackage builds a workout from a type code and sensor readings
// ordered the way the variant constructor expects them.
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := constructors[WorkoutCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}

	if len(data) != c.arity {
		return nil, fmt.Errorf("workout %s expects %d readings, got %d", code, c.arity, len(data))
	}

	w, err := c.build(data)
	if err != nil {
		return nil, fmt.Errorf("cannot build workout %s: %w", code, err)
	}
	return w, nil
}

func integer(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be an integer, got %v", name, v)
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold
	if v >= float64(math.MaxInt) || v < float64(math.MinInt) {
		return 0, fmt.Errorf("%s is out of range, got %v", name, v)
	}
	return int(v), nil
}
