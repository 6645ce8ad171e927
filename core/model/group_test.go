package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup(RawGroup{Day: "Понеділок", Time: "09:00-10:30", Type: "Лекція", Auditorium: "A-101", Weeks: "1"})
	require.NoError(t, err)
	assert.Equal(t, Monday, g.Day)
	assert.Equal(t, "Лекція", g.Name())
	assert.Equal(t, "Лекція|Понеділок|09:00-10:30|1|A-101", g.Key())
}

// The first failing cell in construction order decides the error kind.
func TestParseGroup_Order(t *testing.T) {
	raw := RawGroup{Day: "Неділя", Time: "bad", Type: "bad", Auditorium: "bad", Weeks: "bad"}
	_, err := ParseGroup(raw)
	assert.Equal(t, KindInvalidDayOfWeek, KindOf(err))

	raw.Day = "Вівторок"
	_, err = ParseGroup(raw)
	assert.Equal(t, KindInvalidLessonTime, KindOf(err))

	raw.Time = "8:30-9:50"
	_, err = ParseGroup(raw)
	assert.Equal(t, KindInvalidLessonType, KindOf(err))

	raw.Type = "1"
	_, err = ParseGroup(raw)
	assert.Equal(t, KindInvalidAuditorium, KindOf(err))

	raw.Auditorium = "КМЦ"
	_, err = ParseGroup(raw)
	assert.Equal(t, KindInvalidWeeksFormat, KindOf(err))

	raw.Weeks = "1-5"
	_, err = ParseGroup(raw)
	assert.NoError(t, err)
}

func TestNewGroup_AggregatesViolations(t *testing.T) {
	_, err := NewGroup(LessonType{Kind: Classes}, Day(0), LessonTime{}, Auditorium{}, Weeks{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	v := Violations(err)
	assert.GreaterOrEqual(t, len(v), 5, "every broken field is reported: %v", v)
}
