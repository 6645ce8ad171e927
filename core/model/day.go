package model

import "strings"

// Day is a day of the six-day academic week.
type Day uint8

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Days lists the academic week in order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayNames = map[Day]string{
	Monday:    "Понеділок",
	Tuesday:   "Вівторок",
	Wednesday: "Середа",
	Thursday:  "Четвер",
	Friday:    "П'ятниця",
	Saturday:  "Субота",
}

var dayAliases = map[string]Day{
	"понеділок": Monday, "monday": Monday, "пн": Monday,
	"вівторок": Tuesday, "tuesday": Tuesday, "вт": Tuesday,
	"середа": Wednesday, "wednesday": Wednesday, "ср": Wednesday,
	"четвер": Thursday, "thursday": Thursday, "чт": Thursday,
	"п'ятниця": Friday, "friday": Friday, "пт": Friday,
	"субота": Saturday, "saturday": Saturday, "сб": Saturday,
}

var apostrophes = strings.NewReplacer("’", "'", "ʼ", "'", "`", "'", "‘", "'")

// ParseDay parses a Ukrainian or English day name.
func ParseDay(s string) (Day, error) {
	key := apostrophes.Replace(strings.ToLower(strings.TrimSpace(s)))
	if d, ok := dayAliases[key]; ok {
		return d, nil
	}
	return 0, NewError(KindInvalidDayOfWeek, s, nil)
}

// Valid reports whether d is one of Monday..Saturday.
func (d Day) Valid() bool { return d >= Monday && d <= Saturday }

func (d Day) String() string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return ""
}

func (d Day) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Day) UnmarshalText(b []byte) error {
	v, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
