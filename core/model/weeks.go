package model

import (
	"slices"
	"strconv"
	"strings"
)

// Bounds of a study week number within one term.
const (
	MinWeek = 1
	MaxWeek = 40
)

// WeeksKind discriminates the Weeks variants.
type WeeksKind uint8

const (
	WeeksSingle WeeksKind = iota + 1
	WeeksRange
	WeeksCombined
)

// Weeks is the recurrence of a lesson across the term: a single week, an
// inclusive range, or a combination of both.
type Weeks struct {
	Kind  WeeksKind `json:"kind"`
	First uint8     `json:"first,omitempty"`
	Last  uint8     `json:"last,omitempty"`
	Parts []Weeks   `json:"parts,omitempty" validate:"omitempty,dive"`
}

// SingleWeek returns the Single variant.
func SingleWeek(n uint8) Weeks { return Weeks{Kind: WeeksSingle, First: n, Last: n} }

// WeekRange returns the Range variant.
func WeekRange(first, last uint8) Weeks { return Weeks{Kind: WeeksRange, First: first, Last: last} }

// CombinedWeeks returns the Combined variant. Nested combinations are
// flattened and a single part collapses to that part.
func CombinedWeeks(parts ...Weeks) Weeks {
	flat := make([]Weeks, 0, len(parts))
	for _, p := range parts {
		if p.Kind == WeeksCombined {
			flat = append(flat, p.Parts...)
			continue
		}
		flat = append(flat, p)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Weeks{Kind: WeeksCombined, Parts: flat}
}

// ParseWeeks parses `6`, `3-10` or comma separated combinations like
// `1,3-8,10`.
func ParseWeeks(s string) (Weeks, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Weeks{}, NewError(KindInvalidWeeksFormat, raw, nil)
	}
	tokens := strings.Split(s, ",")
	parts := make([]Weeks, 0, len(tokens))
	for _, tok := range tokens {
		w, ok := parseWeeksPart(strings.TrimSpace(tok))
		if !ok {
			return Weeks{}, NewError(KindInvalidWeeksFormat, raw, nil)
		}
		parts = append(parts, w)
	}
	w := CombinedWeeks(parts...)
	if err := Validate(w); err != nil {
		return Weeks{}, NewError(KindInvalidWeeksFormat, raw, err)
	}
	return w, nil
}

func parseWeeksPart(tok string) (Weeks, bool) {
	if tok == "" {
		return Weeks{}, false
	}
	first, last, isRange := strings.Cut(tok, "-")
	a, ok := parseWeekNumber(first)
	if !ok {
		return Weeks{}, false
	}
	if !isRange {
		return SingleWeek(a), true
	}
	b, ok := parseWeekNumber(last)
	if !ok || a > b {
		return Weeks{}, false
	}
	return WeekRange(a, b), true
}

func parseWeekNumber(s string) (uint8, bool) {
	n, err := parseDigits(strings.TrimSpace(s))
	if err != nil || n < MinWeek || n > MaxWeek {
		return 0, false
	}
	return uint8(n), true
}

// Numbers returns the sorted set of weeks covered.
func (w Weeks) Numbers() []uint8 {
	var out []uint8
	switch w.Kind {
	case WeeksSingle:
		out = []uint8{w.First}
	case WeeksRange:
		for n := int(w.First); n <= int(w.Last); n++ {
			out = append(out, uint8(n))
		}
	case WeeksCombined:
		for _, p := range w.Parts {
			out = append(out, p.Numbers()...)
		}
		slices.Sort(out)
		out = slices.Compact(out)
	}
	return out
}

// Contains reports whether the lesson takes place in week n.
func (w Weeks) Contains(n uint8) bool {
	switch w.Kind {
	case WeeksSingle:
		return w.First == n
	case WeeksRange:
		return n >= w.First && n <= w.Last
	case WeeksCombined:
		for _, p := range w.Parts {
			if p.Contains(n) {
				return true
			}
		}
	}
	return false
}

func (w Weeks) String() string {
	switch w.Kind {
	case WeeksSingle:
		return strconv.Itoa(int(w.First))
	case WeeksRange:
		return strconv.Itoa(int(w.First)) + "-" + strconv.Itoa(int(w.Last))
	case WeeksCombined:
		parts := make([]string, len(w.Parts))
		for i, p := range w.Parts {
			parts[i] = p.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

func (w Weeks) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Weeks) UnmarshalText(b []byte) error {
	v, err := ParseWeeks(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
