package ingest

import (
	"fmt"
	"strings"
)

// Policy decides what happens when one file fails.
type Policy int

const (
	// PolicySkip records the failure and continues with the other files.
	PolicySkip Policy = iota
	// PolicyAbort stops the run at the first failure.
	PolicyAbort
)

// ParsePolicy parses "skip" or "abort". Empty selects PolicySkip.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}

func (p Policy) String() string {
	if p == PolicyAbort {
		return "abort"
	}
	return "skip"
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
