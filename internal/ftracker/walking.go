package ftracker

import (
	"math"
)

// SportsWalking is a sports walking workout.
type SportsWalking struct {
	Training
	Height float64 // рост в сантиметрах
}

var _ Workout = SportsWalking{}

// NewSportsWalking returns a sports walking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: newTraining(action, duration, weight, LenStep),
		Height:   height,
	}
}

func (SportsWalking) TrainingType() string {
	return "SportsWalking"
}

// SpentCalories expects a non-zero Height.
func (w SportsWalking) SpentCalories() float64 {
	speedMsec := w.MeanSpeed() * KmhInMsec
	return (walkingCaloriesWeightMultiplier*w.Weight +
		math.Pow(speedMsec, 2)/(w.Height/CmInM)*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinInH)
}
