package service

import (
	"github.com/platewise/platewise/internal/domain"
)

// macroSplit holds the calorie share per macro for one goal class
type macroSplit struct {
	protein float64
	carbs   float64
	fats    float64
}

var macroSplits = map[domain.GoalClass]macroSplit{
	domain.GoalWeightLoss: {protein: 0.30, carbs: 0.40, fats: 0.30},
	domain.GoalMuscleGain: {protein: 0.35, carbs: 0.45, fats: 0.20},
	domain.GoalBalanced:   {protein: 0.30, carbs: 0.40, fats: 0.30},
}

// CalculateMetrics derives BMI, estimated daily energy need, and macro
// targets from validated user input. Pure arithmetic, always succeeds.
//
// The energy estimate is the Mifflin-St Jeor base without age/sex terms
// (10·kg + 6.25·cm − 5), a documented approximation, scaled by a fixed
// moderate activity factor of 1.5 and truncated to whole kcal. Protein and
// carb grams use 4 kcal/g, fat 9 kcal/g, all truncated to integers.
func CalculateMetrics(input domain.UserInput) domain.UserMetrics {
	heightM := float64(input.HeightCM) / 100
	bmi := float64(input.WeightKG) / (heightM * heightM)

	bmr := 10*float64(input.WeightKG) + 6.25*float64(input.HeightCM) - 5
	const activityFactor = 1.5
	tdee := int(bmr * activityFactor)

	split := macroSplits[domain.ClassifyGoal(input.DietGoals)]
	targets := domain.MacroTargets{
		ProteinG: int(float64(tdee) * split.protein / 4),
		CarbsG:   int(float64(tdee) * split.carbs / 4),
		FatsG:    int(float64(tdee) * split.fats / 9),
	}

	return domain.UserMetrics{
		HeightCM:     input.HeightCM,
		WeightKG:     input.WeightKG,
		BMI:          bmi,
		TDEEEstimate: tdee,
		MacroTargets: targets,
	}
}
