package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/naukma-schedule/core/model"
)

var header = []string{"День", "Час", "Дисципліна", "Група", "Тижні", "Аудиторія"}

func TestParseFaculty_Inheritance(t *testing.T) {
	rows := [][]string{
		{"Факультет економічних наук"},
		{"Спеціальність Економіка, 2 курс"},
		header,
		{"Понеділок", "8:30-9:50", "Мікроекономіка\n(ек+фін)", "Лекція", "1-14", "1-225"},
		{"", "", "", "1", "2-14", "3-301"},
		{},
		{"", "10:00-11:20", "Філософія", "Лекція", "1,3,5", "КМЦ"},
		{"", "", "Без групи", "", "1", "1-101"},
		header,
		{"Вівторок", "11.40-13.00", "Філософія", "2", "2", "Д"},
	}
	f, err := ParseFaculty(" ФЕН ", rows, FacultyOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ФЕН", f.Name)

	eco, ok := f.Speciality(Economics)
	require.True(t, ok)
	groups, err := eco.Groups("Мікроекономіка (ек+фін)")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, model.Monday, groups[1].Day, "day inherited")
	assert.Equal(t, "08:30-09:50", groups[1].Time.String(), "time inherited")

	fin, ok := f.Speciality(Finances)
	require.True(t, ok)
	_, err = fin.Groups("Мікроекономіка (ек+фін)")
	require.NoError(t, err)

	gen, ok := f.Speciality(General)
	require.True(t, ok)
	phil, err := gen.Groups("Філософія")
	require.NoError(t, err)
	require.Len(t, phil, 2)
	assert.Equal(t, model.Monday, phil[0].Day)
	assert.Equal(t, model.Tuesday, phil[1].Day)
	_, err = gen.Groups("Без групи")
	assert.ErrorIs(t, err, ErrNotFound, "rows without a group are skipped")
}

func TestParseFaculty_FixedSpeciality(t *testing.T) {
	rows := [][]string{header, {"Середа", "13:30-14:50", "Маркетинг (ек)", "Лекція", "1", "2-101"}}
	f, err := ParseFaculty("ФЕН", rows, FacultyOptions{Speciality: Marketing})
	require.NoError(t, err)
	assert.Len(t, f.SpecialityList(), 1)
	sp, ok := f.Speciality(Marketing)
	require.True(t, ok)
	assert.Len(t, sp.DisciplineList(), 1)
}

func TestParseFaculty_RowError(t *testing.T) {
	rows := [][]string{
		header,
		{"Понеділок", "8:30-9:50", "Алгоритми", "Лекція", "1-14", "1-225"},
		{"Понеділок", "9:50-8:30", "Алгоритми", "1", "1-14", "1-225"},
	}
	_, err := ParseFaculty("ФІ", rows, FacultyOptions{File: "ФІ.xlsx", Sheet: "Sheet1"})
	require.Error(t, err)
	var rowErr *model.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, "ФІ.xlsx", rowErr.File)
	assert.Equal(t, model.KindInvalidLessonTime, model.KindOf(err))
}

func TestParseFaculty_EmptyNames(t *testing.T) {
	_, err := ParseFaculty("  ", nil, FacultyOptions{})
	require.Error(t, err)
	assert.Equal(t, model.KindValidation, model.KindOf(err))

	rows := [][]string{header, {"Понеділок", "8:30-9:50", "", "Лекція", "1", "1-225"}}
	_, err = ParseFaculty("ФІ", rows, FacultyOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation), "discipline name is required")
}

func TestParseFaculty_DuplicateRowsStoredOnce(t *testing.T) {
	row := []string{"Понеділок", "8:30-9:50", "Алгоритми", "1", "1-14", "1-225"}
	f, err := ParseFaculty("ФІ", [][]string{header, row, row}, FacultyOptions{})
	require.NoError(t, err)
	sp, _ := f.Speciality(General)
	groups, err := sp.Groups("Алгоритми")
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestParseFaculty_FirstRowWithoutDay(t *testing.T) {
	rows := [][]string{header, {"", "8:30-9:50", "Алгоритми", "Лекція", "1-14", "1-225"}}
	_, err := ParseFaculty("ФІ", rows, FacultyOptions{File: "ФІ.xlsx"})
	require.Error(t, err)
	var rowErr *model.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, model.KindInvalidDayOfWeek, model.KindOf(err))
}

func TestNormalizeDiscipline(t *testing.T) {
	assert.Equal(t, "Теорія ймовірностей (ек)", NormalizeDiscipline(" Теорія\nймовірностей   (ек) "))
}
