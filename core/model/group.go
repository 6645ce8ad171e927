package model

import "strings"

// Group is one scheduled lesson occurrence of a discipline. It is built once
// from a spreadsheet row and never modified afterwards.
type Group struct {
	Type       LessonType `json:"Назва" yaml:"Назва"`
	Time       LessonTime `json:"Час" yaml:"Час"`
	Weeks      Weeks      `json:"Тижні" yaml:"Тижні"`
	Auditorium Auditorium `json:"Аудиторія" yaml:"Аудиторія"`
	Day        Day        `json:"День тижня" yaml:"День тижня" validate:"min=1,max=6"`
}

// RawGroup holds the textual cells a Group is built from.
type RawGroup struct {
	Day        string
	Time       string
	Type       string
	Auditorium string
	Weeks      string
}

// ParseGroup parses every cell in order and validates the assembled
// record. The first primitive failure is returned as is.
func ParseGroup(raw RawGroup) (Group, error) {
	day, err := ParseDay(raw.Day)
	if err != nil {
		return Group{}, err
	}
	lt, err := ParseLessonTime(raw.Time)
	if err != nil {
		return Group{}, err
	}
	typ, err := ParseLessonType(raw.Type)
	if err != nil {
		return Group{}, err
	}
	aud, err := ParseAuditorium(raw.Auditorium)
	if err != nil {
		return Group{}, err
	}
	weeks, err := ParseWeeks(raw.Weeks)
	if err != nil {
		return Group{}, err
	}
	return NewGroup(typ, day, lt, aud, weeks)
}

// NewGroup validates the fields and returns the Group.
func NewGroup(typ LessonType, day Day, lt LessonTime, aud Auditorium, weeks Weeks) (Group, error) {
	g := Group{Type: typ, Time: lt, Weeks: weeks, Auditorium: aud, Day: day}
	if err := Validate(g); err != nil {
		return Group{}, err
	}
	return g, nil
}

// Name is the group label shown in schedules: `Лекція` or the subgroup number.
func (g Group) Name() string { return g.Type.String() }

// Key identifies a group by all of its fields.
func (g Group) Key() string {
	return strings.Join([]string{
		g.Type.String(),
		g.Day.String(),
		g.Time.String(),
		g.Weeks.String(),
		g.Auditorium.String(),
	}, "|")
}
