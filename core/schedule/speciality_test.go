package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/naukma-schedule/core/model"
)

func TestParseSpecialityName(t *testing.T) {
	for _, n := range SpecialityNames {
		got, err := ParseSpecialityName(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	got, err := ParseSpecialityName("softwareengineering")
	require.NoError(t, err)
	assert.Equal(t, SoftwareEngineering, got)

	_, err = ParseSpecialityName("Астрологія")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidSpeciality))
}

func TestSpecialityName_Text(t *testing.T) {
	var n SpecialityName
	require.NoError(t, n.UnmarshalText([]byte("Фінанси")))
	assert.Equal(t, Finances, n)
	assert.Error(t, n.UnmarshalText([]byte("Фізика")))
}

func TestDisciplineResolver(t *testing.T) {
	r := DisciplineResolver{}
	assert.Equal(t, []SpecialityName{General}, r.Resolve("Філософія"))
	assert.Equal(t, []SpecialityName{Economics, Finances}, r.Resolve("Мікроекономіка (ек+фін)"))
	assert.Equal(t, []SpecialityName{Management, Marketing}, r.Resolve("Стратегія (мен., марк., мен.)"))
	assert.Equal(t, []SpecialityName{Marketing}, r.Resolve("Реклама (маркетинг)"))
}

func TestDisciplineResolver_CapitalisedNamesAreGeneral(t *testing.T) {
	r := DisciplineResolver{}
	assert.Equal(t, []SpecialityName{General}, r.Resolve("Економіка"))
	assert.Equal(t, []SpecialityName{General}, r.Resolve("Маркетинг"))
	assert.Equal(t, []SpecialityName{General}, r.Resolve("Реклама (Маркетинг)"))
	assert.Equal(t, []SpecialityName{Finances}, r.Resolve("Економіка (фін.)"))
}

func TestFixedAndFuncResolvers(t *testing.T) {
	assert.Equal(t, []SpecialityName{Economics}, FixedResolver(Economics).Resolve("будь-що"))
	f := ResolverFunc(func(string) []SpecialityName { return []SpecialityName{Management} })
	assert.Equal(t, []SpecialityName{Management}, f.Resolve("x"))
}
