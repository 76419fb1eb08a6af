package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// ClockTime is a time of day stored as the offset from midnight.
type ClockTime time.Duration

// NewClockTime builds a ClockTime from hours, minutes and seconds.
func NewClockTime(h, m, s int) ClockTime {
	return ClockTime(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

// ParseClockTime accepts "HH:MM" or "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewClockTime(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// Valid reports whether c lies in [00:00, 24:00).
func (c ClockTime) Valid() bool {
	return c >= 0 && time.Duration(c) < day
}

// Duration returns the offset from midnight.
func (c ClockTime) Duration() time.Duration { return time.Duration(c) }

func (c ClockTime) String() string {
	d := time.Duration(c)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	v, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
