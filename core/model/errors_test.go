package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	err := NewError(KindInvalidWeeksFormat, "10-3", nil)
	assert.Contains(t, err.Error(), "`10-3`")
	assert.Contains(t, err.Error(), "examples")
	assert.Equal(t, "InvalidWeeksFormat", err.Kind.String())
}

func TestError_CauseChain(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "x.xlsx", Err: fs.ErrNotExist}
	err := fmt.Errorf("ingest: %w", NewError(KindIO, "x.xlsx", cause))

	assert.True(t, errors.Is(err, ErrIO))
	assert.False(t, errors.Is(err, ErrXlsx))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, KindIO, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))

	var pe *fs.PathError
	assert.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "input/output error")
}

func TestRowError(t *testing.T) {
	err := &RowError{File: "ФІ.xlsx", Sheet: "Sheet1", Row: 12, Err: NewError(KindInvalidDayOfWeek, "Неділя", nil)}
	assert.Equal(t, "ФІ.xlsx [Sheet1] row 12: wrong day of the week: `Неділя`", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidDayOfWeek))
}
