package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is a wall-clock time of day with minute precision.
type Time struct {
	Hours   uint8 `json:"hours" validate:"max=23"`
	Minutes uint8 `json:"minutes" validate:"max=59"`
}

// NewTime returns a validated Time.
func NewTime(hours, minutes uint8) (Time, error) {
	t := Time{Hours: hours, Minutes: minutes}
	if err := Validate(t); err != nil {
		return Time{}, err
	}
	return t, nil
}

// ParseTime parses `HH:MM`. A dot is accepted as separator as well since
// schedule authors use both.
func ParseTime(s string) (Time, error) {
	raw := s
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":.")
	if sep < 1 || sep > 2 || len(s)-sep-1 != 2 {
		return Time{}, NewError(KindInvalidTimeFormat, raw, nil)
	}
	h, err := parseDigits(s[:sep])
	if err != nil {
		return Time{}, NewError(KindInvalidTimeFormat, raw, nil)
	}
	m, err := parseDigits(s[sep+1:])
	if err != nil {
		return Time{}, NewError(KindInvalidTimeFormat, raw, nil)
	}
	if h > 23 || m > 59 {
		return Time{}, NewError(KindInvalidTimeFormat, raw, nil)
	}
	return Time{Hours: uint8(h), Minutes: uint8(m)}, nil
}

// Before reports whether t is strictly earlier than o.
func (t Time) Before(o Time) bool { return t.minutesOfDay() < o.minutesOfDay() }

func (t Time) minutesOfDay() int { return int(t.Hours)*60 + int(t.Minutes) }

func (t Time) String() string { return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes) }

func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// LessonTime is the time span of one lesson.
type LessonTime struct {
	From Time `json:"from"`
	To   Time `json:"to"`
}

// NewLessonTime returns a validated LessonTime; from must precede to.
func NewLessonTime(from, to Time) (LessonTime, error) {
	lt := LessonTime{From: from, To: to}
	if err := Validate(lt); err != nil {
		return LessonTime{}, err
	}
	return lt, nil
}

// ParseLessonTime parses `HH:MM-HH:MM`.
func ParseLessonTime(s string) (LessonTime, error) {
	norm := strings.NewReplacer("–", "-", "—", "-").Replace(strings.TrimSpace(s))
	parts := strings.Split(norm, "-")
	if len(parts) != 2 {
		return LessonTime{}, NewError(KindInvalidLessonTime, s, nil)
	}
	from, err := ParseTime(parts[0])
	if err != nil {
		return LessonTime{}, NewError(KindInvalidLessonTime, s, err)
	}
	to, err := ParseTime(parts[1])
	if err != nil {
		return LessonTime{}, NewError(KindInvalidLessonTime, s, err)
	}
	lt, err := NewLessonTime(from, to)
	if err != nil {
		return LessonTime{}, NewError(KindInvalidLessonTime, s, err)
	}
	return lt, nil
}

// Duration returns the lesson length in minutes.
func (lt LessonTime) Duration() int { return lt.To.minutesOfDay() - lt.From.minutesOfDay() }

func (lt LessonTime) String() string { return lt.From.String() + "-" + lt.To.String() }

func (lt LessonTime) MarshalText() ([]byte, error) { return []byte(lt.String()), nil }

func (lt *LessonTime) UnmarshalText(b []byte) error {
	v, err := ParseLessonTime(string(b))
	if err != nil {
		return err
	}
	*lt = v
	return nil
}

// parseDigits accepts ASCII digits only, unlike strconv which also takes signs.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
