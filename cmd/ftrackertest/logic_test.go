package main

import (
	"fmt"
	"math"
)

const (
	lenStep   = 0.65
	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.278
	cmInM     = 100

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

const messageTemplate = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

func distance(action float64, step float64) float64 {
	return action * step / mInKm
}

func meanSpeed(action, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool, duration float64) float64 {
	return lengthPool * countPool / mInKm / duration
}

func runningSpentCalories(action, duration, weight float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*meanSpeed(action, duration) + runningCaloriesMeanSpeedShift) *
		weight / mInKm * (duration * minInH)
}

func walkingSpentCalories(action, duration, weight, height float64) float64 {
	speed := meanSpeed(action, duration) * kmhInMsec
	return (walkingCaloriesWeightMultiplier*weight +
		math.Pow(speed, 2)/(height/cmInM)*walkingSpeedHeightMultiplier*weight) *
		(duration * minInH)
}

func swimmingSpentCalories(duration, weight, lengthPool, countPool float64) float64 {
	return (swimmingMeanSpeed(lengthPool, countPool, duration) + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * weight * duration
}

// expectedMessage builds the report line for a package independently of ftracker code
func expectedMessage(code string, data []float64) string {
	action, duration, weight := data[0], data[1], data[2]

	switch code {
	case "RUN":
		return fmt.Sprintf(messageTemplate, "Running", duration,
			distance(action, lenStep), meanSpeed(action, duration),
			runningSpentCalories(action, duration, weight))
	case "WLK":
		return fmt.Sprintf(messageTemplate, "SportsWalking", duration,
			distance(action, lenStep), meanSpeed(action, duration),
			walkingSpentCalories(action, duration, weight, data[3]))
	case "SWM":
		return fmt.Sprintf(messageTemplate, "Swimming", duration,
			distance(action, swimmingLenStep), swimmingMeanSpeed(data[3], data[4], duration),
			swimmingSpentCalories(duration, weight, data[3], data[4]))
	}
	return ""
}
