// Package ftracker calculates distance, mean speed and spent calories
// for running, sports walking and swimming workouts.
package ftracker

// Workout is a completed exercise session with its own set of formulas.
// It is implemented by Running, SportsWalking and Swimming only.
type Workout interface {
	// TrainingType returns the display name used in reports.
	TrainingType() string
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the spent energy in kcal.
	SpentCalories() float64

	hours() float64
}

// Training holds sensor readings shared by every workout type.
// It provides the default distance and speed formulas but no calorie formula,
// so a bare Training is not a Workout.
type Training struct {
	Action   int     // количество шагов или гребков
	Duration float64 // длительность в часах
	Weight   float64 // вес в килограммах

	lenStep float64
}

func newTraining(action int, duration, weight, lenStep float64) Training {
	return Training{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  lenStep,
	}
}

// Distance возвращает дистанцию в километрах.
func (t Training) Distance() float64 {
	return float64(t.Action) * t.lenStep / MInKm
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func (t Training) hours() float64 {
	return t.Duration
}

// ShowTrainingInfo collects computed metrics of w into an InfoMessage.
func ShowTrainingInfo(w Workout) InfoMessage {
	return InfoMessage{
		TrainingType: w.TrainingType(),
		Duration:     w.hours(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
