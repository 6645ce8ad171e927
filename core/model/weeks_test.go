package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeeks(t *testing.T) {
	w, err := ParseWeeks("3-10")
	require.NoError(t, err)
	assert.Equal(t, WeekRange(3, 10), w)

	w, err = ParseWeeks("6")
	require.NoError(t, err)
	assert.Equal(t, SingleWeek(6), w)

	w, err = ParseWeeks("1, 3-8,10")
	require.NoError(t, err)
	assert.Equal(t, CombinedWeeks(SingleWeek(1), WeekRange(3, 8), SingleWeek(10)), w)
	assert.Equal(t, WeeksCombined, w.Kind)
	assert.Equal(t, "1,3-8,10", w.String())
	assert.Equal(t, []uint8{1, 3, 4, 5, 6, 7, 8, 10}, w.Numbers())
	assert.True(t, w.Contains(5))
	assert.False(t, w.Contains(9))
}

func TestParseWeeks_CombinedUnion(t *testing.T) {
	w, err := ParseWeeks("2-5,4-7,7")
	require.NoError(t, err)
	assert.Equal(t, []uint8{2, 3, 4, 5, 6, 7}, w.Numbers())
}

func TestParseWeeks_Invalid(t *testing.T) {
	for _, in := range []string{"", "10-3", "0", "41", "1-41", "1,,2", "a", "1-", "-3", "1;2", "3-10-12", " , "} {
		_, err := ParseWeeks(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidWeeksFormat), in)
	}
}

func TestWeeks_Validation(t *testing.T) {
	assert.Error(t, Validate(WeekRange(10, 3)))
	assert.Error(t, Validate(SingleWeek(0)))
	assert.Error(t, Validate(Weeks{Kind: WeeksCombined}))
	assert.Error(t, Validate(Weeks{}))
	nested := Weeks{Kind: WeeksCombined, Parts: []Weeks{{Kind: WeeksCombined, Parts: []Weeks{SingleWeek(1)}}}}
	assert.Error(t, Validate(nested))
	assert.NoError(t, Validate(CombinedWeeks(SingleWeek(1), WeekRange(2, 4))))
}

func TestCombinedWeeks_Flattens(t *testing.T) {
	inner := CombinedWeeks(SingleWeek(1), SingleWeek(2))
	w := CombinedWeeks(inner, SingleWeek(3))
	require.Len(t, w.Parts, 3)
	assert.Equal(t, SingleWeek(4), CombinedWeeks(SingleWeek(4)))
}

func TestWeeks_Text(t *testing.T) {
	var w Weeks
	require.NoError(t, w.UnmarshalText([]byte("1-13")))
	b, _ := w.MarshalText()
	assert.Equal(t, "1-13", string(b))
}
