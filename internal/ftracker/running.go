package ftracker

// Running is a running workout.
type Running struct {
	Training
}

var _ Workout = Running{}

// NewRunning returns a running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Training: newTraining(action, duration, weight, LenStep)}
}

func (Running) TrainingType() string {
	return "Running"
}

// SpentCalories uses the shared Training speed formula.
func (r Running) SpentCalories() float64 {
	speed := r.Training.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * (r.Duration * MinInH)
}
