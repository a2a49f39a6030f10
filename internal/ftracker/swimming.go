package ftracker

// Swimming is a pool swimming workout. Its speed depends on pool length
// and number of laps, not on the stroke count.
type Swimming struct {
	Training
	LengthPool float64 // длина бассейна в метрах
	CountPool  int     // сколько раз пользователь переплыл бассейн
}

var _ Workout = Swimming{}

// NewSwimming returns a swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Training:   newTraining(action, duration, weight, SwimmingLenStep),
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (Swimming) TrainingType() string {
	return "Swimming"
}

// MeanSpeed возвращает среднюю скорость в км/ч по длине и количеству бассейнов.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}
