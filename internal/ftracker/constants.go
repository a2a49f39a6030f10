package ftracker

// Общие константы для расчёта дистанции, скорости и калорий.
const (
	LenStep         = 0.65 // длина шага в метрах
	SwimmingLenStep = 1.38 // длина гребка в метрах
	MInKm           = 1000 // количество метров в километре
	MinInH          = 60   // количество минут в часе
	KmhInMsec       = 0.278
	CmInM           = 100
)

// Коэффициенты для расчёта калорий при беге.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Коэффициенты для расчёта калорий при спортивной ходьбе.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// Коэффициенты для расчёта калорий при плавании.
const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)
