package fetch

import (
	"errors"
	"strconv"
)

// Mode is the cross-origin policy hint passed to the host.
// The zero value is ModeCors.
type Mode int

const (
	// ModeCors allows cross-origin requests that follow the CORS protocol.
	ModeCors Mode = iota
	// ModeNoCors allows simple cross-origin requests with opaque responses.
	ModeNoCors
	// ModeSameOrigin fails cross-origin requests.
	ModeSameOrigin
)

// String returns the name of the mode as the browser spells it.
func (m Mode) String() string {
	switch m {
	case ModeCors:
		return "cors"
	case ModeNoCors:
		return "no-cors"
	case ModeSameOrigin:
		return "same-origin"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode converts the browser spelling of a mode into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeCors, ModeNoCors, ModeSameOrigin} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errors.New("unknown mode: " + strconv.Quote(s))
}
