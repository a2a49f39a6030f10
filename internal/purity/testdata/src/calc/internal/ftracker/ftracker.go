package ftracker

import (
	"fmt"
	"math"
	"os" // want "calculation package must not import os"
)

func Distance(action int) float64 {
	return math.Abs(float64(action)) * 0.65 / 1000
}

func Message(distance float64) string {
	return fmt.Sprintf("%.3f", distance)
}

func Show(distance float64) {
	fmt.Println(Message(distance))  // want "calculation package must not call fmt.Println"
	fmt.Fprintln(os.Stderr, "done") // want "calculation package must not call fmt.Fprintln"
}
