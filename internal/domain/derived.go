package domain

import "time"

// Defaults applied when the calorie inputs are unknown.
const (
	DefaultWeightKG = 70.0
	DefaultMET      = 1.0

	maleFactor   = 3.5
	femaleFactor = 3.1

	kjToKcal = 0.239
)

// Span returns the time elapsed from start to end. An end earlier than start
// is taken to be on the following day.
func Span(start, end ClockTime) time.Duration {
	d := time.Duration(end - start)
	if d < 0 {
		d += day
	}
	return d
}

// CalorieBasis holds the read-time inputs of the exercise calorie estimate.
// None of it is stored on the sport record.
type CalorieBasis struct {
	MET      float64
	WeightKG *float64
	Gender   *Gender
}

// BurnedCalories estimates kcal for an activity of the given duration:
// MET * weight * factor / 200 * minutes.
func BurnedCalories(b CalorieBasis, d time.Duration) float64 {
	met := b.MET
	if met <= 0 {
		met = DefaultMET
	}
	weight := DefaultWeightKG
	if b.WeightKG != nil && *b.WeightKG > 0 {
		weight = *b.WeightKG
	}
	factor := maleFactor
	if b.Gender != nil && *b.Gender == GenderFemale {
		factor = femaleFactor
	}
	return met * weight * factor / 200.0 * d.Hours() * 60.0
}

// FoodFacts are the per-100g catalog values an item estimate is built from.
type FoodFacts struct {
	Name         string
	EnergyKJ     float64
	WaterContent float64
}

// ItemCalories converts the catalog energy for grams of food into kcal.
func ItemCalories(f FoodFacts, grams float64) float64 {
	return f.EnergyKJ * kjToKcal * grams / 100.0
}

// ItemWater returns grams of water contained in grams of food.
func ItemWater(f FoodFacts, grams float64) float64 {
	return f.WaterContent * grams / 100.0
}
