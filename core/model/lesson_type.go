package model

import (
	"strconv"
	"strings"
)

const lectionLabel = "Лекція"

// GroupNumber is the number of a seminar subgroup.
type GroupNumber uint8

// LessonTypeKind discriminates the LessonType variants.
type LessonTypeKind uint8

const (
	Lection LessonTypeKind = iota + 1
	Classes
)

// LessonType tells a lecture for the whole stream from classes held with a
// numbered subgroup.
type LessonType struct {
	Kind  LessonTypeKind `json:"kind"`
	Group GroupNumber    `json:"group,omitempty"`
}

// Lecture returns the Lection variant.
func Lecture() LessonType { return LessonType{Kind: Lection} }

// ClassesFor returns the Classes variant for subgroup n.
func ClassesFor(n GroupNumber) LessonType { return LessonType{Kind: Classes, Group: n} }

// ParseLessonType parses `Лекція` or a subgroup number. Spreadsheets
// sometimes render integers as `2.0`, which is accepted too.
func ParseLessonType(s string) (LessonType, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case strings.ToLower(lectionLabel), "лекції", "lecture", "lection":
		return Lecture(), nil
	}
	t = strings.TrimSuffix(t, ".0")
	n, err := parseDigits(t)
	if err != nil || n < 1 || n > 255 {
		return LessonType{}, NewError(KindInvalidLessonType, s, nil)
	}
	return ClassesFor(GroupNumber(n)), nil
}

// IsLecture reports whether the lesson is a lecture.
func (l LessonType) IsLecture() bool { return l.Kind == Lection }

func (l LessonType) String() string {
	switch l.Kind {
	case Lection:
		return lectionLabel
	case Classes:
		return strconv.Itoa(int(l.Group))
	default:
		return ""
	}
}

func (l LessonType) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *LessonType) UnmarshalText(b []byte) error {
	v, err := ParseLessonType(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
