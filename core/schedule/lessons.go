package schedule

import "github.com/kilianp07/naukma-schedule/core/model"

// Lesson is a flattened schedule row, one per group and speciality.
type Lesson struct {
	Faculty    string `csv:"faculty" json:"faculty"`
	Speciality string `csv:"speciality" json:"speciality"`
	Discipline string `csv:"discipline" json:"discipline"`
	Day        string `csv:"day" json:"day"`
	Time       string `csv:"time" json:"time"`
	Group      string `csv:"group" json:"group"`
	Weeks      string `csv:"weeks" json:"weeks"`
	Auditorium string `csv:"auditorium" json:"auditorium"`
}

// NewLesson flattens one group.
func NewLesson(faculty string, speciality SpecialityName, discipline string, g model.Group) Lesson {
	return Lesson{
		Faculty:    faculty,
		Speciality: speciality.String(),
		Discipline: discipline,
		Day:        g.Day.String(),
		Time:       g.Time.String(),
		Group:      g.Name(),
		Weeks:      g.Weeks.String(),
		Auditorium: g.Auditorium.String(),
	}
}

// Lessons flattens the whole schedule in insertion order.
func (s *Schedule) Lessons() []Lesson {
	var out []Lesson
	for _, f := range s.FacultyList() {
		for _, sp := range f.SpecialityList() {
			for _, d := range sp.DisciplineList() {
				for _, g := range d.Groups {
					out = append(out, NewLesson(f.Name, sp.Name, d.Name, g))
				}
			}
		}
	}
	return out
}

// Stats counts the entities of a schedule.
type Stats struct {
	Faculties    int `json:"faculties"`
	Specialities int `json:"specialities"`
	Disciplines  int `json:"disciplines"`
	Groups       int `json:"groups"`
}

// Stats returns entity counts.
func (s *Schedule) Stats() Stats {
	var st Stats
	for _, f := range s.FacultyList() {
		st.Faculties++
		for _, sp := range f.SpecialityList() {
			st.Specialities++
			for _, d := range sp.DisciplineList() {
				st.Disciplines++
				st.Groups += len(d.Groups)
			}
		}
	}
	return st
}
