package rest

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

type accountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountView(a *domain.Account) accountView {
	return accountView{ID: a.ID, Username: a.Username, Email: a.Email, CreatedAt: a.CreatedAt}
}

type profileView struct {
	RealName       string         `json:"real_name"`
	Gender         *domain.Gender `json:"gender"`
	HeightCM       *float64       `json:"height_cm"`
	WeightKG       *float64       `json:"weight_kg"`
	Birthday       *string        `json:"birthday"`
	SleepGoalHours float64        `json:"sleep_goal_hours"`
	BurnGoalKcal   float64        `json:"burn_goal_kcal"`
	IntakeGoalKcal float64        `json:"intake_goal_kcal"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func toProfileView(p *domain.Profile) profileView {
	return profileView{
		RealName:       p.RealName,
		Gender:         p.Gender,
		HeightCM:       p.HeightCM,
		WeightKG:       p.WeightKG,
		Birthday:       formatOptDate(p.Birthday),
		SleepGoalHours: p.SleepGoalHours,
		BurnGoalKcal:   p.BurnGoalKcal,
		IntakeGoalKcal: p.IntakeGoalKcal,
		UpdatedAt:      p.UpdatedAt,
	}
}

type sleepView struct {
	ID              uuid.UUID        `json:"id"`
	AccountID       uuid.UUID        `json:"account_id"`
	Date            string           `json:"date"`
	SleepTime       domain.ClockTime `json:"sleep_time"`
	WakeTime        domain.ClockTime `json:"wake_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Note            *string          `json:"note,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toSleepView(r *domain.SleepRecord) sleepView {
	return sleepView{
		ID:              r.ID,
		AccountID:       r.AccountID,
		Date:            formatDate(r.Date),
		SleepTime:       r.SleepTime,
		WakeTime:        r.WakeTime,
		DurationMinutes: int(r.Duration() / time.Minute),
		Note:            r.Note,
		CreatedAt:       r.CreatedAt,
	}
}

type sportRecordView struct {
	ID              uuid.UUID        `json:"id"`
	AccountID       uuid.UUID        `json:"account_id"`
	SportID         int              `json:"sport_id"`
	SportName       string           `json:"sport_name"`
	Date            string           `json:"date"`
	BeginTime       domain.ClockTime `json:"begin_time"`
	EndTime         domain.ClockTime `json:"end_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Calories        float64          `json:"calories"`
	Note            *string          `json:"note,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toSportRecordView(r *domain.SportRecord) sportRecordView {
	return sportRecordView{
		ID:              r.ID,
		AccountID:       r.AccountID,
		SportID:         r.SportID,
		SportName:       r.SportName,
		Date:            formatDate(r.Date),
		BeginTime:       r.BeginTime,
		EndTime:         r.EndTime,
		DurationMinutes: int(r.Duration() / time.Minute),
		Calories:        round1(r.Calories()),
		Note:            r.Note,
		CreatedAt:       r.CreatedAt,
	}
}

type mealItemView struct {
	ID       uuid.UUID `json:"id"`
	FoodID   *int      `json:"food_id"`
	FoodName string    `json:"food_name,omitempty"`
	Grams    float64   `json:"grams"`
	Calories float64   `json:"calories"`
	WaterG   float64   `json:"water_g"`
}

type mealView struct {
	ID        uuid.UUID         `json:"id"`
	AccountID uuid.UUID         `json:"account_id"`
	Date      string            `json:"date"`
	Meal      domain.MealType   `json:"meal"`
	Source    domain.MealSource `json:"source"`
	Calories  float64           `json:"calories"`
	WaterG    float64           `json:"water_g"`
	Items     []mealItemView    `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
}

func toMealView(r *domain.MealRecord) mealView {
	v := mealView{
		ID:        r.ID,
		AccountID: r.AccountID,
		Date:      formatDate(r.Date),
		Meal:      r.Meal,
		Source:    r.Source,
		Calories:  round1(r.TotalCalories()),
		WaterG:    round1(r.TotalWater()),
		Items:     make([]mealItemView, 0, len(r.Items)),
		CreatedAt: r.CreatedAt,
	}
	for i := range r.Items {
		it := &r.Items[i]
		iv := mealItemView{
			ID:       it.ID,
			FoodID:   it.FoodID,
			Grams:    it.Grams,
			Calories: round1(it.Calories()),
			WaterG:   round1(it.Water()),
		}
		if it.Food != nil {
			iv.FoodName = it.Food.Name
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

type refView struct {
	Kind domain.ActivityKind `json:"activity_type"`
	ID   uuid.UUID           `json:"activity_id"`
}

func toRefView(ref domain.ActivityRef) refView {
	return refView{Kind: ref.Kind, ID: ref.ID}
}

type commentView struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	refView
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentView(c *domain.Comment) commentView {
	return commentView{
		ID:        c.ID,
		AccountID: c.AccountID,
		Username:  c.Username,
		refView:   toRefView(c.Activity),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type edgeView struct {
	ID           uuid.UUID         `json:"id"`
	FromID       uuid.UUID         `json:"from_id"`
	FromUsername string            `json:"from_username,omitempty"`
	ToID         uuid.UUID         `json:"to_id"`
	ToUsername   string            `json:"to_username,omitempty"`
	Status       domain.EdgeStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toEdgeView(e *domain.FriendEdge) edgeView {
	return edgeView{
		ID:           e.ID,
		FromID:       e.FromID,
		FromUsername: e.FromUsername,
		ToID:         e.ToID,
		ToUsername:   e.ToUsername,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type feedEntryView struct {
	Kind      domain.ActivityKind `json:"activity_type"`
	CreatedAt time.Time           `json:"created_at"`
	Sleep     *sleepView          `json:"sleep,omitempty"`
	Sport     *sportRecordView    `json:"sport,omitempty"`
	Meal      *mealView           `json:"meal,omitempty"`
}

func toFeedEntryView(e *domain.FeedEntry) feedEntryView {
	v := feedEntryView{Kind: e.Kind, CreatedAt: e.CreatedAt}
	switch {
	case e.Sleep != nil:
		sv := toSleepView(e.Sleep)
		v.Sleep = &sv
	case e.Sport != nil:
		sv := toSportRecordView(e.Sport)
		v.Sport = &sv
	case e.Meal != nil:
		mv := toMealView(e.Meal)
		v.Meal = &mv
	}
	return v
}

type sportView struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	MET  float64 `json:"met"`
}

type foodView struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	EdiblePortion float64 `json:"edible_portion"`
	EnergyKJ      float64 `json:"energy_kj"`
	WaterContent  float64 `json:"water_content"`
}

func toFoodView(f *domain.Food) foodView {
	return foodView{
		ID:            f.ID,
		Name:          f.Name,
		EdiblePortion: f.EdiblePortion,
		EnergyKJ:      f.EnergyKJ,
		WaterContent:  f.WaterContent,
	}
}

// mapSlice converts every element of in with fn; the result is never nil.
func mapSlice[E any, V any](in []E, fn func(*E) V) []V {
	out := make([]V, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
