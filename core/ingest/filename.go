package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kilianp07/naukma-schedule/core/model"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

// ParseFileName derives the faculty and the optional speciality from a
// schedule file name: `<Faculty>.<Speciality>.xlsx` or `<Faculty>.xlsx`.
// A zero speciality means disciplines are resolved one by one. Malformed
// names are ValidationError, unknown specialities InvalidSpeciality.
func ParseFileName(path string) (string, schedule.SpecialityName, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, ".")
	switch len(parts) {
	case 1:
		if strings.TrimSpace(parts[0]) == "" {
			return "", 0, model.NewError(model.KindValidation, base, fmt.Errorf("file name %q: empty faculty", base))
		}
		return strings.TrimSpace(parts[0]), 0, nil
	case 2:
		sn, err := schedule.ParseSpecialityName(parts[1])
		if err != nil {
			return "", 0, fmt.Errorf("file name %q: %w", base, err)
		}
		return strings.TrimSpace(parts[0]), sn, nil
	default:
		return "", 0, model.NewError(model.KindValidation, base,
			fmt.Errorf("file name %q: want <faculty>.xlsx or <faculty>.<speciality>.xlsx", base))
	}
}
