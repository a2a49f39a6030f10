package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/ftracker/internal/random"
)

var workoutFlags = flag.NewFlagSet("workout", flag.ExitOnError)

var (
	flagWorkoutType  = workoutFlags.String("type", "", "workout code (SWM, RUN, WLK); random if empty")
	flagWorkoutCount = workoutFlags.Int("n", 1, "number of packages to generate")
)

var workoutCmd = cmd{
	name:      "workout",
	shortHelp: "generates random workout packages",
	do:        generateWorkout,
	flags:     workoutFlags,
}

func generateWorkout() {
	code := ftracker.WorkoutCode(strings.ToUpper(*flagWorkoutType))
	if code != "" {
		if _, ok := ftracker.Arity(code); !ok {
			fatalf("unknown workout type %q", code)
		}
	}

	records := make([]string, 0, *flagWorkoutCount)
	for i := 0; i < *flagWorkoutCount; i++ {
		if code == "" {
			records = append(records, random.AnyWorkout().String())
			continue
		}
		records = append(records, random.Workout(code).String())
	}
	fmt.Print(strings.Join(records, " "))
}
