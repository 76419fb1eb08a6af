package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRef points at a sleep, sport or meal record. Comments reference
// their activity through it instead of a foreign key.
type ActivityRef struct {
	Kind ActivityKind
	ID   uuid.UUID
}

// SleepRecord is one night of sleep.
type SleepRecord struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Date      time.Time
	SleepTime ClockTime
	WakeTime  ClockTime
	Note      *string
	CreatedAt time.Time
}

// Duration is derived on every read; it is never stored.
func (r *SleepRecord) Duration() time.Duration {
	return Span(r.SleepTime, r.WakeTime)
}

func (r *SleepRecord) Ref() ActivityRef {
	return ActivityRef{Kind: ActivitySleep, ID: r.ID}
}

// Sport is a catalog entry with its metabolic equivalent.
type Sport struct {
	ID   int
	Name string
	MET  float64
}

// SportRecord is one exercise session. Basis is filled from the sport
// catalog and the owner's profile at read time.
type SportRecord struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	SportID   int
	SportName string
	Date      time.Time
	BeginTime ClockTime
	EndTime   ClockTime
	Note      *string
	CreatedAt time.Time

	Basis CalorieBasis
}

func (r *SportRecord) Duration() time.Duration {
	return Span(r.BeginTime, r.EndTime)
}

// Calories is recomputed from the current profile, so a weight change is
// reflected in every past record.
func (r *SportRecord) Calories() float64 {
	return BurnedCalories(r.Basis, r.Duration())
}

func (r *SportRecord) Ref() ActivityRef {
	return ActivityRef{Kind: ActivitySport, ID: r.ID}
}

// Food is a nutrition catalog entry. Values are per 100g.
type Food struct {
	ID            int
	Name          string
	EdiblePortion float64
	EnergyKJ      float64
	WaterContent  float64
}

func (f *Food) Facts() FoodFacts {
	return FoodFacts{Name: f.Name, EnergyKJ: f.EnergyKJ, WaterContent: f.WaterContent}
}

// MealRecord is a meal with its line items.
type MealRecord struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Date      time.Time
	Meal      MealType
	Source    MealSource
	CreatedAt time.Time
	Items     []MealItem
}

// MealItem is a quantity of one catalog food. FoodID is nil once the food
// has been retired from the catalog.
type MealItem struct {
	ID           uuid.UUID
	MealRecordID uuid.UUID
	FoodID       *int
	Grams        float64
	Food         *FoodFacts
}

func (i *MealItem) Calories() float64 {
	if i.Food == nil {
		return 0
	}
	return ItemCalories(*i.Food, i.Grams)
}

func (i *MealItem) Water() float64 {
	if i.Food == nil {
		return 0
	}
	return ItemWater(*i.Food, i.Grams)
}

func (r *MealRecord) TotalCalories() float64 {
	var sum float64
	for i := range r.Items {
		sum += r.Items[i].Calories()
	}
	return sum
}

func (r *MealRecord) TotalWater() float64 {
	var sum float64
	for i := range r.Items {
		sum += r.Items[i].Water()
	}
	return sum
}

func (r *MealRecord) Ref() ActivityRef {
	return ActivityRef{Kind: ActivityMeal, ID: r.ID}
}

// Comment is attached to an activity of the author or of an accepted friend.
type Comment struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Username  string
	Activity  ActivityRef
	Content   string
	CreatedAt time.Time
}

// FeedEntry is one item of a friend activity feed. Exactly one of the
// record pointers is set.
type FeedEntry struct {
	Kind      ActivityKind
	CreatedAt time.Time
	Sleep     *SleepRecord
	Sport     *SportRecord
	Meal      *MealRecord
}
