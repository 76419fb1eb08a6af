package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/transport/middleware"
)

const (
	maxBodyBytes = 1 << 20
	dateLayout   = "2006-01-02"
	// retryAfterSeconds is sent with LOCK_TIMEOUT responses.
	retryAfterSeconds = "1"
)

// httpStatus maps a mutation status to the HTTP status of its response.
func httpStatus(s domain.Status, created bool) int {
	switch s {
	case domain.StatusSuccess:
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusUnauthorized:
		return http.StatusForbidden
	case domain.StatusLockTimeout:
		return http.StatusServiceUnavailable
	case domain.StatusAlreadyProcessed, domain.StatusDuplicateRelationship, domain.StatusConflict:
		return http.StatusConflict
	case domain.StatusSelfReference:
		return http.StatusUnprocessableEntity
	case domain.StatusInvalidInput:
		return http.StatusBadRequest
	case domain.StatusRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func writeData(w http.ResponseWriter, httpCode int, data any) {
	middleware.WriteEnvelope(w, httpCode, middleware.Envelope{
		Code: domain.StatusSuccess,
		Data: data,
	})
}

func writeStatus(w http.ResponseWriter, s domain.Status, msg string, fields []domain.FieldError) {
	if s == domain.StatusLockTimeout {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	env := middleware.Envelope{Code: s, Message: msg}
	for _, f := range fields {
		env.Errors = append(env.Errors, middleware.FieldError{Field: f.Field, Message: f.Message})
	}
	middleware.WriteEnvelope(w, httpStatus(s, false), env)
}

// writeOutcome answers a mutation. On success view converts the committed
// value into the response payload.
func writeOutcome[T any](w http.ResponseWriter, out mutation.Outcome[T], created bool, view func(T) any) {
	if !out.OK() {
		writeStatus(w, out.Status, out.Message, out.Fields)
		return
	}
	var data any
	if view != nil {
		data = view(out.Value)
	}
	writeData(w, httpStatus(domain.StatusSuccess, created), data)
}

// writeError answers a failed read.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := domain.StatusOf(err)
	msg := status.String()

	var (
		se *domain.StatusError
		ve *domain.ValidationError
	)
	switch {
	case status == domain.StatusInternalFailure:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		msg = "internal error"
	case errors.As(err, &ve):
		writeStatus(w, status, ve.Error(), ve.Errors)
		return
	case errors.As(err, &se) && se.Reason != "":
		msg = se.Reason
	}
	writeStatus(w, status, msg, nil)
}

func writeBadRequest(w http.ResponseWriter, field, msg string) {
	writeStatus(w, domain.StatusInvalidInput, "invalid "+field,
		[]domain.FieldError{{Field: field, Message: msg}})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := "malformed JSON"
		if errors.Is(err, io.EOF) {
			msg = "empty body"
		} else if strings.HasPrefix(err.Error(), "json: unknown field") {
			msg = err.Error()
		}
		writeBadRequest(w, "body", msg)
		return false
	}
	return true
}

// pathID parses the {id} path value as a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "id", "must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// fields accumulates request-level parse errors.
type fields []domain.FieldError

func (f *fields) add(field, msg string) {
	*f = append(*f, domain.FieldError{Field: field, Message: msg})
}

func (f fields) write(w http.ResponseWriter) bool {
	if len(f) == 0 {
		return false
	}
	writeStatus(w, domain.StatusInvalidInput, domain.NewValidationErrors(f).Error(), f)
	return true
}

func (f *fields) date(field, s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		f.add(field, "must be a date in YYYY-MM-DD form")
	}
	return t
}

func (f *fields) optDate(field string, s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := f.date(field, *s)
	return &t
}

func (f *fields) limit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		f.add("limit", "must be a non-negative integer")
		return 0
	}
	return n
}

// recordFilter reads ?from=&to=&limit= for record listings.
func recordFilter(r *http.Request) (domain.RecordFilter, fields) {
	var errs fields
	q := r.URL.Query()
	var f domain.RecordFilter
	if v := q.Get("from"); v != "" {
		f.From = errs.optDate("from", &v)
	}
	if v := q.Get("to"); v != "" {
		f.To = errs.optDate("to", &v)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		errs.add("to", "must not be before from")
	}
	f.Limit = errs.limit(r)
	return f, errs
}

func formatDate(t time.Time) string { return t.Format(dateLayout) }

func formatOptDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
