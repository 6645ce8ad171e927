package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the schedule rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(lessonTimeStructLevel, LessonTime{})
		validate.RegisterStructValidation(weeksStructLevel, Weeks{})
		validate.RegisterStructValidation(auditoriumStructLevel, Auditorium{})
		validate.RegisterStructValidation(lessonTypeStructLevel, LessonType{})
	})
	return validate
}

// Violation is one failed field rule.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
	Value any    `json:"value,omitempty"`
}

func (v Violation) String() string {
	if v.Param != "" {
		return fmt.Sprintf("%s: %s=%s (got %v)", v.Field, v.Rule, v.Param, v.Value)
	}
	return fmt.Sprintf("%s: %s (got %v)", v.Field, v.Rule, v.Value)
}

// Validate checks every rule of s and reports all broken ones at once as a
// ValidationError.
func Validate(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewError(KindValidation, "", verrs)
	}
	return NewError(KindValidation, "", err)
}

// Violations extracts the field violations carried by a ValidationError.
func Violations(err error) []Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return out
}

func lessonTimeStructLevel(sl validator.StructLevel) {
	lt := sl.Current().Interface().(LessonTime)
	if !lt.From.Before(lt.To) {
		sl.ReportError(lt.To, "To", "To", "gtfield", "From")
	}
}

func weeksStructLevel(sl validator.StructLevel) {
	w := sl.Current().Interface().(Weeks)
	switch w.Kind {
	case WeeksSingle:
		if w.First < MinWeek || w.First > MaxWeek {
			sl.ReportError(w.First, "First", "First", "week", fmt.Sprintf("%d-%d", MinWeek, MaxWeek))
		}
	case WeeksRange:
		if w.First < MinWeek || w.First > MaxWeek {
			sl.ReportError(w.First, "First", "First", "week", fmt.Sprintf("%d-%d", MinWeek, MaxWeek))
		}
		if w.Last < MinWeek || w.Last > MaxWeek {
			sl.ReportError(w.Last, "Last", "Last", "week", fmt.Sprintf("%d-%d", MinWeek, MaxWeek))
		}
		if w.First > w.Last {
			sl.ReportError(w.Last, "Last", "Last", "gtefield", "First")
		}
	case WeeksCombined:
		if len(w.Parts) == 0 {
			sl.ReportError(w.Parts, "Parts", "Parts", "required", "")
		}
		for _, p := range w.Parts {
			if p.Kind == WeeksCombined {
				sl.ReportError(w.Parts, "Parts", "Parts", "flat", "")
				break
			}
		}
	default:
		sl.ReportError(w.Kind, "Kind", "Kind", "oneof", "single range combined")
	}
}

func auditoriumStructLevel(sl validator.StructLevel) {
	a := sl.Current().Interface().(Auditorium)
	switch a.Kind {
	case AuditoriumDistance, AuditoriumArtCenter:
	case AuditoriumPavilion:
		if a.Number.Pavilion == "" {
			sl.ReportError(a.Number.Pavilion, "Number.Pavilion", "Pavilion", "required", "")
		}
		if a.Number.Room < 1 || a.Number.Room > 499 {
			sl.ReportError(a.Number.Room, "Number.Room", "Room", "room", "1-499")
		}
	default:
		sl.ReportError(a.Kind, "Kind", "Kind", "oneof", "distance artcenter pavilion")
	}
}

func lessonTypeStructLevel(sl validator.StructLevel) {
	l := sl.Current().Interface().(LessonType)
	switch l.Kind {
	case Lection:
	case Classes:
		if l.Group < 1 {
			sl.ReportError(l.Group, "Group", "Group", "min", "1")
		}
	default:
		sl.ReportError(l.Kind, "Kind", "Kind", "oneof", "lection classes")
	}
}
