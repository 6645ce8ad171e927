package schedule

import (
	"strings"

	"github.com/kilianp07/naukma-schedule/core/model"
)

// SpecialityName is the closed set of specialities schedules are published for.
type SpecialityName uint8

const (
	General SpecialityName = iota + 1
	Economics
	Finances
	Management
	Marketing
	SoftwareEngineering
)

// SpecialityNames lists every known speciality.
var SpecialityNames = []SpecialityName{General, Economics, Finances, Management, Marketing, SoftwareEngineering}

var specialityLabels = map[SpecialityName]string{
	General:             "<загальна>",
	Economics:           "Економіка",
	Finances:            "Фінанси",
	Management:          "Менеджмент",
	Marketing:           "Маркетинг",
	SoftwareEngineering: "Інженерія програмного забезпечення",
}

var specialityIdents = map[SpecialityName]string{
	General:             "general",
	Economics:           "economics",
	Finances:            "finances",
	Management:          "management",
	Marketing:           "marketing",
	SoftwareEngineering: "softwareengineering",
}

// ParseSpecialityName accepts the Ukrainian label or the English identifier.
func ParseSpecialityName(s string) (SpecialityName, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for n, label := range specialityLabels {
		if t == strings.ToLower(label) || t == specialityIdents[n] {
			return n, nil
		}
	}
	return 0, model.NewError(model.KindInvalidSpeciality, s, nil)
}

func (n SpecialityName) String() string { return specialityLabels[n] }

func (n SpecialityName) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *SpecialityName) UnmarshalText(b []byte) error {
	v, err := ParseSpecialityName(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// SpecialityResolver decides which specialities a discipline of a
// multi-speciality faculty file belongs to.
type SpecialityResolver interface {
	Resolve(discipline string) []SpecialityName
}

// ResolverFunc adapts a function to SpecialityResolver.
type ResolverFunc func(discipline string) []SpecialityName

func (f ResolverFunc) Resolve(discipline string) []SpecialityName { return f(discipline) }

// FixedResolver assigns every discipline to one speciality.
type FixedResolver SpecialityName

func (r FixedResolver) Resolve(string) []SpecialityName { return []SpecialityName{SpecialityName(r)} }

var abbreviations = map[string]SpecialityName{
	"ек": Economics, "ек.": Economics, "екон": Economics, "екон.": Economics, "економіка": Economics,
	"мен": Management, "мен.": Management, "менеджмент": Management,
	"фін": Finances, "фін.": Finances, "фінанси": Finances,
	"мар": Marketing, "мар.": Marketing, "марк": Marketing, "марк.": Marketing, "маркетинг": Marketing,
}

// DisciplineResolver reads the speciality markers put in brackets after a
// discipline name, e.g. `Мікроекономіка (ек+фін)`. Markers are lowercase and
// matched exactly, so a course named `Економіка` stays General. Disciplines
// without markers are General.
type DisciplineResolver struct{}

func (DisciplineResolver) Resolve(discipline string) []SpecialityName {
	tokens := strings.FieldsFunc(discipline, func(r rune) bool {
		return r == '(' || r == ')' || r == '+' || r == ','
	})
	var names []SpecialityName
	seen := map[SpecialityName]bool{}
	for _, tok := range tokens {
		n, ok := abbreviations[strings.TrimSpace(tok)]
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	if len(names) == 0 {
		names = append(names, General)
	}
	return names
}
