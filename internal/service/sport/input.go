package sport

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const maxNoteLength = 500

// RecordInput holds the fields of an exercise session.
type RecordInput struct {
	SportID   int
	Date      time.Time
	BeginTime domain.ClockTime
	EndTime   domain.ClockTime
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	if errs := i.check(nil); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i RecordInput) check(errs []domain.FieldError) []domain.FieldError {
	if i.SportID <= 0 {
		errs = append(errs, domain.FieldError{Field: "sport_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.BeginTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "begin_time", Message: "must be within a day"})
	}
	if !i.EndTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be within a day"})
	}
	if i.Note != nil && len(*i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}
	return errs
}

// UpdateInput changes a session. Nil fields are left unchanged; an empty
// Note clears the note.
type UpdateInput struct {
	ID        uuid.UUID
	SportID   *int
	Date      *time.Time
	BeginTime *domain.ClockTime
	EndTime   *domain.ClockTime
	Note      *string
}

// Validate checks the set fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.SportID == nil && i.Date == nil && i.BeginTime == nil && i.EndTime == nil && i.Note == nil {
		errs = append(errs, domain.FieldError{Field: "record", Message: "no fields to update"})
	}
	if i.SportID != nil && *i.SportID <= 0 {
		errs = append(errs, domain.FieldError{Field: "sport_id", Message: "required"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.BeginTime != nil && !i.BeginTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "begin_time", Message: "must be within a day"})
	}
	if i.EndTime != nil && !i.EndTime.Valid() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be within a day"})
	}
	if i.Note != nil && len(*i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(rec *domain.SportRecord) {
	if i.SportID != nil {
		rec.SportID = *i.SportID
	}
	if i.Date != nil {
		rec.Date = *i.Date
	}
	if i.BeginTime != nil {
		rec.BeginTime = *i.BeginTime
	}
	if i.EndTime != nil {
		rec.EndTime = *i.EndTime
	}
	if i.Note != nil {
		rec.Note = nil
		if note := domain.CleanText(*i.Note); note != "" {
			rec.Note = &note
		}
	}
}

func (i RecordInput) record(id, owner uuid.UUID) *domain.SportRecord {
	rec := &domain.SportRecord{
		ID:        id,
		AccountID: owner,
		SportID:   i.SportID,
		Date:      i.Date,
		BeginTime: i.BeginTime,
		EndTime:   i.EndTime,
	}
	if i.Note != nil {
		if note := domain.CleanText(*i.Note); note != "" {
			rec.Note = &note
		}
	}
	return rec
}
