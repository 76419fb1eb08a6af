package account

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// ProfileInput is a partial profile update. Nil fields are left unchanged.
type ProfileInput struct {
	RealName       *string
	Gender         *domain.Gender
	HeightCM       *float64
	WeightKG       *float64
	Birthday       *time.Time
	SleepGoalHours *float64
	BurnGoalKcal   *float64
	IntakeGoalKcal *float64
}

func (i ProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.RealName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.RealName)) > 64 {
		errs = append(errs, domain.FieldError{Field: "real_name", Message: "too long"})
	}
	if i.Gender != nil && !i.Gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be male or female"})
	}
	errs = checkRange(errs, "height_cm", i.HeightCM, 30, 300)
	errs = checkRange(errs, "weight_kg", i.WeightKG, 2, 500)
	if i.Birthday != nil && i.Birthday.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "birthday", Message: "must be in the past"})
	}
	errs = checkRange(errs, "sleep_goal_hours", i.SleepGoalHours, 0, 24)
	errs = checkRange(errs, "burn_goal_kcal", i.BurnGoalKcal, 0, 20000)
	errs = checkRange(errs, "intake_goal_kcal", i.IntakeGoalKcal, 0, 20000)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ProfileInput) empty() bool {
	return i == ProfileInput{}
}

// apply copies the set fields onto p.
func (i ProfileInput) apply(p *domain.Profile) {
	if i.RealName != nil {
		p.RealName = strings.TrimSpace(*i.RealName)
	}
	if i.Gender != nil {
		p.Gender = i.Gender
	}
	if i.HeightCM != nil {
		p.HeightCM = i.HeightCM
	}
	if i.WeightKG != nil {
		p.WeightKG = i.WeightKG
	}
	if i.Birthday != nil {
		p.Birthday = i.Birthday
	}
	if i.SleepGoalHours != nil {
		p.SleepGoalHours = *i.SleepGoalHours
	}
	if i.BurnGoalKcal != nil {
		p.BurnGoalKcal = *i.BurnGoalKcal
	}
	if i.IntakeGoalKcal != nil {
		p.IntakeGoalKcal = *i.IntakeGoalKcal
	}
}

// checkRange requires lo < v <= hi when v is set.
func checkRange(errs []domain.FieldError, field string, v *float64, lo, hi float64) []domain.FieldError {
	if v != nil && (*v <= lo || *v > hi) {
		errs = append(errs, domain.FieldError{Field: field, Message: "out of range"})
	}
	return errs
}
