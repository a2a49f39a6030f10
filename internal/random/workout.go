package random

import (
	"strings"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
)

// Ranges of generated sensor readings
const (
	minActions = 1000
	maxActions = 20000
	minWeight  = 50
	maxWeight  = 140
	minHeight  = 150
	maxHeight  = 220
	minPool    = 10
	maxPool    = 50
	minLaps    = 1
	maxLaps    = 60
)

// Workout returns a record with random but plausible readings for code.
// Unknown codes get three random readings.
func Workout(code ftracker.WorkoutCode) ftracker.Record {
	data := []float64{
		float64(Int(minActions, maxActions)),
		Hours(3),
		float64(Int(minWeight, maxWeight)),
	}

	switch code {
	case ftracker.CodeSportsWalking:
		data = append(data, float64(Int(minHeight, maxHeight)))
	case ftracker.CodeSwimming:
		data = append(data, float64(Int(minPool, maxPool)), float64(Int(minLaps, maxLaps)))
	}

	return ftracker.Record{Code: string(code), Data: data}
}

// AnyWorkout returns a random record of a random known type.
func AnyWorkout() ftracker.Record {
	codes := ftracker.WorkoutCodes()
	return Workout(codes[rnd.Intn(len(codes))])
}

// UnknownCode returns a code absent from the workout table.
func UnknownCode() string {
	for {
		code := strings.ToUpper(ASCIIString(3, 6))
		if _, ok := ftracker.Arity(ftracker.WorkoutCode(code)); !ok {
			return code
		}
	}
}
