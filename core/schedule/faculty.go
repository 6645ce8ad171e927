package schedule

import (
	"strings"

	"github.com/kilianp07/naukma-schedule/core/model"
)

// Sheet columns of a faculty timetable.
const (
	colDay = iota
	colTime
	colDiscipline
	colGroup
	colWeeks
	colAuditorium
)

const headerDay = "День"

// FacultyOptions controls how sheet rows are attributed to specialities.
type FacultyOptions struct {
	// Speciality pins every row to one speciality. When zero, Resolver
	// decides per discipline.
	Speciality SpecialityName
	Resolver   SpecialityResolver
	// File and Sheet are reported in row errors.
	File  string
	Sheet string
}

// ParseFaculty builds a faculty from the rows of its timetable sheet. Row
// failures are returned as *model.RowError with a 1-based row number.
func ParseFaculty(name string, rows [][]string, opts FacultyOptions) (*Faculty, error) {
	if err := model.Validate(Faculty{Name: strings.TrimSpace(name)}); err != nil {
		return nil, err
	}
	resolver := opts.Resolver
	if opts.Speciality != 0 {
		resolver = FixedResolver(opts.Speciality)
	}
	if resolver == nil {
		resolver = DisciplineResolver{}
	}

	f := NewFaculty(strings.TrimSpace(name))
	if opts.Speciality != 0 {
		f.speciality(opts.Speciality)
	}

	var day, lessonTime, discipline string
	for i := firstDataRow(rows); i < len(rows); i++ {
		row := rows[i]
		if blank(row) || cell(row, colDay) == headerDay {
			continue
		}
		if v := cell(row, colDay); v != "" {
			day = v
		}
		if v := cell(row, colTime); v != "" {
			lessonTime = v
		}
		if v := NormalizeDiscipline(cell(row, colDiscipline)); v != "" {
			discipline = v
		}
		group, weeks := cell(row, colGroup), cell(row, colWeeks)
		if group == "" || weeks == "" {
			continue
		}
		rowErr := func(err error) error {
			return &model.RowError{File: opts.File, Sheet: opts.Sheet, Row: i + 1, Err: err}
		}
		g, err := model.ParseGroup(model.RawGroup{
			Day:        day,
			Time:       lessonTime,
			Type:       group,
			Auditorium: cell(row, colAuditorium),
			Weeks:      weeks,
		})
		if err != nil {
			return nil, rowErr(err)
		}
		if err := model.Validate(Discipline{Name: discipline}); err != nil {
			return nil, rowErr(err)
		}
		// Identical rows of one sheet collapse like identical rows across files.
		for _, sn := range resolver.Resolve(discipline) {
			f.speciality(sn).discipline(discipline).add(g)
		}
	}
	return f, nil
}

// NormalizeDiscipline drops line breaks and collapses runs of whitespace.
func NormalizeDiscipline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstDataRow skips the title block above the first header row. Sheets
// without a header start at the top.
func firstDataRow(rows [][]string) int {
	for i, row := range rows {
		if cell(row, colDay) == headerDay {
			return i + 1
		}
	}
	return 0
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
