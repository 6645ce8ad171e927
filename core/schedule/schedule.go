// Package schedule holds the aggregate timetable: faculties own
// specialities, specialities own disciplines and disciplines own the
// scheduled groups. Maps keep insertion order so encoded output is stable.
package schedule

import (
	"errors"
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kilianp07/naukma-schedule/core/model"
)

// ErrNotFound is wrapped by lookups of unknown names.
var ErrNotFound = errors.New("not found")

// Schedule is the root of a parsed timetable keyed by faculty name.
type Schedule struct {
	Faculties *orderedmap.OrderedMap[string, *Faculty] `json:"Факультети" yaml:"Факультети"`
}

// New returns an empty Schedule.
func New() *Schedule {
	return &Schedule{Faculties: orderedmap.New[string, *Faculty]()}
}

// Faculty returns the faculty with the given name.
func (s *Schedule) Faculty(name string) (*Faculty, bool) {
	if s.Faculties == nil {
		return nil, false
	}
	return s.Faculties.Get(name)
}

// FacultyList returns faculties in insertion order.
func (s *Schedule) FacultyList() []*Faculty {
	if s.Faculties == nil {
		return nil
	}
	out := make([]*Faculty, 0, s.Faculties.Len())
	for p := s.Faculties.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// Merge folds f into the schedule. Faculties, specialities and disciplines
// with the same name are merged, identical groups are kept once. It returns
// the number of groups that were new.
func (s *Schedule) Merge(f *Faculty) int {
	if s.Faculties == nil {
		s.Faculties = orderedmap.New[string, *Faculty]()
	}
	dst, ok := s.Faculties.Get(f.Name)
	if !ok {
		dst = NewFaculty(f.Name)
		s.Faculties.Set(f.Name, dst)
	}
	added := 0
	for _, sp := range f.SpecialityList() {
		dsp := dst.speciality(sp.Name)
		for _, d := range sp.DisciplineList() {
			dd := dsp.discipline(d.Name)
			for _, g := range d.Groups {
				if dd.add(g) {
					added++
				}
			}
		}
	}
	return added
}

// Faculty is a faculty and its specialities keyed by speciality label.
type Faculty struct {
	Name         string                                     `json:"Назва факультету" yaml:"Назва факультету" validate:"required"`
	Specialities *orderedmap.OrderedMap[string, *Speciality] `json:"Cпеціальності" yaml:"Cпеціальності"`
}

// NewFaculty returns an empty faculty.
func NewFaculty(name string) *Faculty {
	return &Faculty{Name: name, Specialities: orderedmap.New[string, *Speciality]()}
}

// Speciality returns the speciality with the given name.
func (f *Faculty) Speciality(name SpecialityName) (*Speciality, bool) {
	if f.Specialities == nil {
		return nil, false
	}
	return f.Specialities.Get(name.String())
}

// SpecialityList returns specialities in insertion order.
func (f *Faculty) SpecialityList() []*Speciality {
	if f.Specialities == nil {
		return nil
	}
	out := make([]*Speciality, 0, f.Specialities.Len())
	for p := f.Specialities.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

func (f *Faculty) speciality(name SpecialityName) *Speciality {
	if f.Specialities == nil {
		f.Specialities = orderedmap.New[string, *Speciality]()
	}
	sp, ok := f.Specialities.Get(name.String())
	if !ok {
		sp = NewSpeciality(name)
		f.Specialities.Set(name.String(), sp)
	}
	return sp
}

// Speciality is a study programme and its disciplines keyed by name.
type Speciality struct {
	Name        SpecialityName                             `json:"Назва спеціальності" yaml:"Назва спеціальності"`
	Disciplines *orderedmap.OrderedMap[string, *Discipline] `json:"Дисципліни" yaml:"Дисципліни"`
}

// NewSpeciality returns an empty speciality.
func NewSpeciality(name SpecialityName) *Speciality {
	return &Speciality{Name: name, Disciplines: orderedmap.New[string, *Discipline]()}
}

// Discipline returns the discipline with the given name.
func (s *Speciality) Discipline(name string) (*Discipline, bool) {
	if s.Disciplines == nil {
		return nil, false
	}
	return s.Disciplines.Get(name)
}

// Groups returns a copy of the groups of a discipline or a ValidationError
// wrapping ErrNotFound.
func (s *Speciality) Groups(discipline string) ([]model.Group, error) {
	d, ok := s.Discipline(discipline)
	if !ok {
		return nil, model.NewError(model.KindValidation, discipline,
			fmt.Errorf("discipline %q in %s: %w", discipline, s.Name, ErrNotFound))
	}
	return slices.Clone(d.Groups), nil
}

// DisciplineList returns disciplines in insertion order.
func (s *Speciality) DisciplineList() []*Discipline {
	if s.Disciplines == nil {
		return nil
	}
	out := make([]*Discipline, 0, s.Disciplines.Len())
	for p := s.Disciplines.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

func (s *Speciality) discipline(name string) *Discipline {
	if s.Disciplines == nil {
		s.Disciplines = orderedmap.New[string, *Discipline]()
	}
	d, ok := s.Disciplines.Get(name)
	if !ok {
		d = &Discipline{Name: name}
		s.Disciplines.Set(name, d)
	}
	return d
}

// Discipline is a course and its scheduled groups.
type Discipline struct {
	Name   string        `json:"Назва дисципліни" yaml:"Назва дисципліни" validate:"required"`
	Groups []model.Group `json:"Групи" yaml:"Групи"`

	keys map[string]struct{}
}

// add appends g unless an identical group is already present.
func (d *Discipline) add(g model.Group) bool {
	if d.keys == nil {
		d.keys = make(map[string]struct{}, len(d.Groups)+1)
		for _, eg := range d.Groups {
			d.keys[eg.Key()] = struct{}{}
		}
	}
	k := g.Key()
	if _, dup := d.keys[k]; dup {
		return false
	}
	d.keys[k] = struct{}{}
	d.Groups = append(d.Groups, g)
	return true
}
