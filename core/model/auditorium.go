package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	artCenterLabel = "КМЦ"
	distanceLabel  = "Дистанційно"
)

var auditoriumPattern = regexp.MustCompile(`^([1-9]|\p{L})\s*-\s*(\d{1,3})$`)

// AuditoriumNumber identifies a room inside a pavilion.
type AuditoriumNumber struct {
	Pavilion string `json:"pavilion" validate:"required,max=4"`
	Room     uint16 `json:"room" validate:"min=1,max=499"`
}

// NewAuditoriumNumber returns a validated AuditoriumNumber.
func NewAuditoriumNumber(pavilion string, room uint16) (AuditoriumNumber, error) {
	n := AuditoriumNumber{Pavilion: pavilion, Room: room}
	if err := Validate(n); err != nil {
		return AuditoriumNumber{}, err
	}
	return n, nil
}

func (n AuditoriumNumber) String() string { return fmt.Sprintf("%s-%d", n.Pavilion, n.Room) }

// AuditoriumKind discriminates the Auditorium variants.
type AuditoriumKind uint8

const (
	AuditoriumDistance AuditoriumKind = iota + 1
	AuditoriumArtCenter
	AuditoriumPavilion
)

// Auditorium is where a lesson takes place. Number is set only for the
// Pavilion variant.
type Auditorium struct {
	Kind   AuditoriumKind   `json:"kind"`
	Number AuditoriumNumber `json:"number" validate:"-"`
}

// Distance returns the distance learning variant.
func Distance() Auditorium { return Auditorium{Kind: AuditoriumDistance} }

// ArtCenter returns the Culture and Art Center variant.
func ArtCenter() Auditorium { return Auditorium{Kind: AuditoriumArtCenter} }

// Pavilion returns the room variant.
func Pavilion(n AuditoriumNumber) Auditorium { return Auditorium{Kind: AuditoriumPavilion, Number: n} }

// ParseAuditorium parses `3-205`, `КМЦ`, `Д` or `Дистанційно`.
func ParseAuditorium(s string) (Auditorium, error) {
	raw := s
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case strings.ToLower(artCenterLabel):
		return ArtCenter(), nil
	case "д", strings.ToLower(distanceLabel):
		return Distance(), nil
	}
	m := auditoriumPattern.FindStringSubmatch(s)
	if m == nil {
		return Auditorium{}, NewError(KindInvalidAuditorium, raw, nil)
	}
	room, err := strconv.Atoi(m[2])
	if err != nil {
		return Auditorium{}, NewError(KindInvalidAuditorium, raw, err)
	}
	num, err := NewAuditoriumNumber(strings.ToUpper(m[1]), uint16(room))
	if err != nil {
		return Auditorium{}, NewError(KindInvalidAuditorium, raw, err)
	}
	return Pavilion(num), nil
}

func (a Auditorium) String() string {
	switch a.Kind {
	case AuditoriumDistance:
		return distanceLabel
	case AuditoriumArtCenter:
		return artCenterLabel
	case AuditoriumPavilion:
		return a.Number.String()
	default:
		return ""
	}
}

func (a Auditorium) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Auditorium) UnmarshalText(b []byte) error {
	v, err := ParseAuditorium(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
