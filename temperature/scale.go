// Package temperature implements temperature values in Celsius, Fahrenheit
// and Kelvin backed by exact decimal arithmetic.
//
// Conversions never go through binary floating point, so converting a value
// to its own unit is always a no-op and conversions through Celsius or Kelvin
// round-trip exactly.
package temperature

import (
	"strings"
)

// Scale is a temperature scale. The set of scales is closed: the only values
// are [Celsius], [Fahrenheit] and [Kelvin]. The zero Scale is Celsius.
type Scale struct {
	i uint8
}

const (
	celsius = iota
	fahrenheit
	kelvin
	numScales
)

var (
	Celsius    = Scale{celsius}
	Fahrenheit = Scale{fahrenheit}
	Kelvin     = Scale{kelvin}
)

var (
	scaleSymbols = [numScales]rune{'C', 'F', 'K'}
	scaleNames   = [numScales]string{"Celsius", "Fahrenheit", "Kelvin"}
)

// Scales returns every supported scale.
func Scales() []Scale {
	return []Scale{Celsius, Fahrenheit, Kelvin}
}

// Symbol returns the upper-case unit letter of s.
func (s Scale) Symbol() rune {
	return scaleSymbols[s.i]
}

// String returns the name of s, i.e. "Celsius".
func (s Scale) String() string {
	return scaleNames[s.i]
}

// Unit returns the canonical unit of s.
func (s Scale) Unit() Unit {
	return Unit{scale: s, char: s.Symbol()}
}

func scaleOf(r rune) (Scale, bool) {
	switch r {
	case 'C', 'c':
		return Celsius, true
	case 'F', 'f':
		return Fahrenheit, true
	case 'K', 'k':
		return Kelvin, true
	}
	return Scale{}, false
}

// ParseScale returns the scale named by s. Either the unit letter or the
// name of the scale is accepted, ignoring case.
func ParseScale(s string) (Scale, error) {
	if u, err := ParseUnit(s); err == nil {
		return u.scale, nil
	}
	for i, name := range scaleNames {
		if strings.EqualFold(s, name) {
			return Scale{uint8(i)}, nil
		}
	}
	return Scale{}, &UnitError{Text: s}
}

// MarshalText implements [encoding.TextMarshaler] by returning the symbol of s.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(string(s.Symbol())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseScale].
func (s *Scale) UnmarshalText(b []byte) (err error) {
	*s, err = ParseScale(string(b))
	return
}

// Set implements [github.com/spf13/pflag.Value].
func (s *Scale) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}

// Type implements [github.com/spf13/pflag.Value].
func (s *Scale) Type() string {
	return "unit"
}
