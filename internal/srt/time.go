package srt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	clockDelimiter  = ":"
	millisDelimiter = ","
)

var (
	ErrMissingTime         = errors.New("time not found")
	ErrMissingHours        = errors.New("hours not found")
	ErrMissingMinutes      = errors.New("minutes not found")
	ErrMissingSeconds      = errors.New("seconds not found")
	ErrMissingMilliseconds = errors.New("milliseconds not found")
)

// TimeFieldError reports a time-code component that is not an integer.
// Err is the underlying *strconv.NumError.
type TimeFieldError struct {
	Field string
	Err   error
}

func (e *TimeFieldError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Field, e.Err)
}

func (e *TimeFieldError) Unwrap() error {
	return e.Err
}

// UnexpectedTimePartError is returned when a time-code has a fourth clock
// token or a second comma.
type UnexpectedTimePartError struct {
	Part string
}

func (e *UnexpectedTimePartError) Error() string {
	return fmt.Sprintf("unexpected time part: '%s'", e.Part)
}

// Time is the moment a subtitle appears or disappears. Components are
// not range checked, so 00:99:00,0 is a valid value.
type Time struct {
	Hours        uint64
	Minutes      uint64
	Seconds      uint64
	Milliseconds uint64
}

// ParseTime parses a time-code of the form H:MM:SS,mmm.
func ParseTime(raw string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(raw), millisDelimiter)
	if len(parts) == 0 {
		return Time{}, ErrMissingTime
	}

	clock := strings.Split(parts[0], clockDelimiter)
	if len(clock) == 0 {
		return Time{}, ErrMissingHours
	}

	var t Time
	var err error
	if t.Hours, err = parseField("hours", clock[0]); err != nil {
		return Time{}, err
	}
	if len(clock) < 2 {
		return Time{}, ErrMissingMinutes
	}
	if t.Minutes, err = parseField("minutes", clock[1]); err != nil {
		return Time{}, err
	}
	if len(clock) < 3 {
		return Time{}, ErrMissingSeconds
	}
	if t.Seconds, err = parseField("seconds", clock[2]); err != nil {
		return Time{}, err
	}
	if len(clock) > 3 {
		return Time{}, &UnexpectedTimePartError{Part: clock[3]}
	}

	if len(parts) < 2 {
		return Time{}, ErrMissingMilliseconds
	}
	if t.Milliseconds, err = parseField("milliseconds", parts[1]); err != nil {
		return Time{}, err
	}
	if len(parts) > 2 {
		return Time{}, &UnexpectedTimePartError{Part: parts[2]}
	}

	return t, nil
}

func parseField(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, &TimeFieldError{Field: field, Err: err}
	}
	return n, nil
}

// total length of the time in milliseconds
func (t Time) TotalMilliseconds() uint64 {
	minutes := t.Minutes + t.Hours*60
	seconds := t.Seconds + minutes*60
	return t.Milliseconds + seconds*1000
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.TotalMilliseconds()) * time.Millisecond
}

func (t Time) String() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d,%d",
		t.Hours,
		t.Minutes,
		t.Seconds,
		t.Milliseconds,
	)
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
