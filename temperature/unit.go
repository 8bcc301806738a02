package temperature

import "unicode/utf8"

// Unit is the unit letter of a [Temperature]. The letter is kept as it was
// written, so "f" displays as "f", but units are compared ignoring case.
//
// The zero Unit is Celsius.
type Unit struct {
	scale Scale
	char  rune
}

// NewUnit returns the Unit for r, which must be one of C, F or K in either
// case. Otherwise the error is a [*UnitError].
func NewUnit(r rune) (Unit, error) {
	s, ok := scaleOf(r)
	if !ok {
		return Unit{}, &UnitError{Text: string(r)}
	}
	return Unit{scale: s, char: r}, nil
}

// ParseUnit is like [NewUnit] but takes a string, which must hold exactly one
// character.
func ParseUnit(s string) (Unit, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) {
		return Unit{}, &UnitError{Text: s}
	}
	return NewUnit(r)
}

// Char returns the unit letter as given to [NewUnit].
func (u Unit) Char() rune {
	if u.char == 0 {
		return u.scale.Symbol()
	}
	return u.char
}

func (u Unit) String() string {
	return string(u.Char())
}

// Scale returns the scale u is a unit of.
func (u Unit) Scale() Scale {
	return u.scale
}

// Equal reports whether u and v denote the same scale.
func (u Unit) Equal(v Unit) bool {
	return u.scale == v.scale
}
