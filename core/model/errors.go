package model

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the schedule parser can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindXlsx
	KindValidation
	KindInvalidAuditorium
	KindInvalidWeeksFormat
	KindInvalidTimeFormat
	KindInvalidLessonTime
	KindInvalidLessonType
	KindInvalidDayOfWeek
	KindInvalidSpeciality
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindXlsx:
		return "XlsxError"
	case KindValidation:
		return "ValidationError"
	case KindInvalidAuditorium:
		return "InvalidAuditorium"
	case KindInvalidWeeksFormat:
		return "InvalidWeeksFormat"
	case KindInvalidTimeFormat:
		return "InvalidTimeFormat"
	case KindInvalidLessonTime:
		return "InvalidLessonTime"
	case KindInvalidLessonType:
		return "InvalidLessonType"
	case KindInvalidDayOfWeek:
		return "InvalidDayOfWeek"
	case KindInvalidSpeciality:
		return "InvalidSpeciality"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is comparisons by kind.
var (
	ErrIO                 = &Error{Kind: KindIO}
	ErrXlsx               = &Error{Kind: KindXlsx}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrInvalidAuditorium  = &Error{Kind: KindInvalidAuditorium}
	ErrInvalidWeeksFormat = &Error{Kind: KindInvalidWeeksFormat}
	ErrInvalidTimeFormat  = &Error{Kind: KindInvalidTimeFormat}
	ErrInvalidLessonTime  = &Error{Kind: KindInvalidLessonTime}
	ErrInvalidLessonType  = &Error{Kind: KindInvalidLessonType}
	ErrInvalidDayOfWeek   = &Error{Kind: KindInvalidDayOfWeek}
	ErrInvalidSpeciality  = &Error{Kind: KindInvalidSpeciality}
)

// Error is the single error type of the schedule parser. Input holds the
// offending token for parse failures, Err the underlying cause if any.
type Error struct {
	Kind  Kind
	Input string
	Err   error
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, input string, cause error) *Error {
	return &Error{Kind: kind, Input: input, Err: cause}
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindIO:
		msg = "input/output error"
	case KindXlsx:
		msg = "cannot process .xlsx document"
	case KindValidation:
		msg = "validation error"
	case KindInvalidAuditorium:
		msg = fmt.Sprintf("invalid auditorium: `%s`; examples: `3-205`, `1-313`, `КМЦ`, `Д`, `д`, `Дистанційно`", e.Input)
	case KindInvalidWeeksFormat:
		msg = fmt.Sprintf("invalid study weeks format: `%s`; examples: `1-13`, `2,3,7,9`, `1`, `1,3-8,10,12-16`", e.Input)
	case KindInvalidTimeFormat:
		msg = fmt.Sprintf("invalid time format: `%s`; examples: `13:25`, `06.45`", e.Input)
	case KindInvalidLessonTime:
		msg = fmt.Sprintf("invalid lesson time: `%s`; examples: `08:30-09:50`, `11.40-13.00`", e.Input)
	case KindInvalidLessonType:
		msg = fmt.Sprintf("invalid lesson type: `%s`", e.Input)
	case KindInvalidDayOfWeek:
		msg = fmt.Sprintf("wrong day of the week: `%s`", e.Input)
	case KindInvalidSpeciality:
		msg = fmt.Sprintf("no such speciality: `%s`", e.Input)
	default:
		msg = "schedule error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// RowError attaches the spreadsheet location to a row construction failure.
type RowError struct {
	File  string
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s [%s] row %d: %v", e.File, e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
