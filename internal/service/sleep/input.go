package sleep

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const maxNoteLength = 500

// CreateInput holds the parameters for recording a night of sleep.
type CreateInput struct {
	Date      time.Time
	SleepTime domain.ClockTime
	WakeTime  domain.ClockTime
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateTimes(nil, i.Date, i.SleepTime, i.WakeTime)
	errs = validateNote(errs, i.Note)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput replaces the fields of an existing record.
// UpdateInput changes a record. Nil fields are left unchanged; an empty
// Note clears the note.
type UpdateInput struct {
	ID        uuid.UUID
	Date      *time.Time
	SleepTime *domain.ClockTime
	WakeTime  *domain.ClockTime
	Note      *string
}

func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Date == nil && i.SleepTime == nil && i.WakeTime == nil && i.Note == nil {
		errs = append(errs, domain.FieldError{Field: "record", Message: "no fields to update"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.SleepTime != nil && !i.SleepTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "sleep_time", Message: "must be within a day"})
	}
	if i.WakeTime != nil && !i.WakeTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "wake_time", Message: "must be within a day"})
	}
	errs = validateNote(errs, i.Note)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(rec *domain.SleepRecord) {
	if i.Date != nil {
		rec.Date = *i.Date
	}
	if i.SleepTime != nil {
		rec.SleepTime = *i.SleepTime
	}
	if i.WakeTime != nil {
		rec.WakeTime = *i.WakeTime
	}
	if i.Note != nil {
		rec.Note = cleanNote(i.Note)
	}
}

func validateTimes(errs []domain.FieldError, date time.Time, sleep, wake domain.ClockTime) []domain.FieldError {
	if date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !sleep.Valid() {
		errs = append(errs, domain.FieldError{Field: "sleep_time", Message: "must be within a day"})
	}
	if !wake.Valid() {
		errs = append(errs, domain.FieldError{Field: "wake_time", Message: "must be within a day"})
	}
	return errs
}

func validateNote(errs []domain.FieldError, note *string) []domain.FieldError {
	if note != nil && len(*note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}
	return errs
}

// cleanNote trims the note. An empty note is stored as NULL.
func cleanNote(note *string) *string {
	if note == nil {
		return nil
	}
	s := domain.CleanText(*note)
	if s == "" {
		return nil
	}
	return &s
}
