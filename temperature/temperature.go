package temperature

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Bounds of a parsed value. Anything larger would take unbounded time and
// memory to convert or format.
const (
	MaxExponent = 100
	MaxDigits   = 100
)

var (
	five          = decimal.NewFromInt(5)
	nine          = decimal.NewFromInt(9)
	thirtyTwo     = decimal.NewFromInt(32)
	oneEight      = decimal.New(18, -1)
	absoluteZeroC = decimal.New(27315, -2)
	absoluteZeroF = decimal.New(45967, -2)
)

// Temperature is a decimal value in a [Unit]. Temperatures are immutable;
// conversions return a new Temperature.
//
// The zero Temperature is 0 C.
type Temperature struct {
	scalar decimal.Decimal
	unit   Unit
}

// New returns the temperature v in the scale s.
func New(v decimal.Decimal, s Scale) Temperature {
	return Temperature{scalar: v, unit: s.Unit()}
}

// Parse parses text of the form <number><unit>, such as "32F", "0c" or
// "-273.15 K". The number is anything accepted by
// [decimal.NewFromString] within [MaxExponent] and [MaxDigits], and may be
// surrounded by spaces. The unit is the last character of text.
//
// If both the number and the unit are invalid, the returned [*ParseError]
// reports both.
func Parse(text string) (Temperature, error) {
	r, n := utf8.DecodeLastRuneInString(text)
	if n == 0 {
		return Temperature{}, ErrEmpty
	}

	raw := strings.TrimSpace(text[:len(text)-n])
	scalar, scalarErr := decimal.NewFromString(raw)
	if scalarErr != nil {
		scalarErr = fmt.Errorf("%w %q: %w", ErrInvalidScalar, raw, scalarErr)
	} else if err := checkBounds(scalar); err != nil {
		scalarErr = fmt.Errorf("%w %q: %w", ErrInvalidScalar, raw, err)
	}
	unit, unitErr := NewUnit(r)

	if scalarErr != nil || unitErr != nil {
		return Temperature{}, &ParseError{
			Input:  text,
			Scalar: scalarErr,
			Unit:   unitErr,
		}
	}
	return Temperature{scalar: scalar, unit: unit}, nil
}

func checkBounds(v decimal.Decimal) error {
	if exp := v.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return fmt.Errorf("exponent %d out of range [%d, %d]", exp, -MaxExponent, MaxExponent)
	}
	if n := v.NumDigits(); n > MaxDigits {
		return fmt.Errorf("%d digits exceeds the maximum of %d", n, MaxDigits)
	}
	return nil
}

// MustParse is like [Parse] but panics if text cannot be parsed.
func MustParse(text string) Temperature {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Scalar returns the numeric value of t.
func (t Temperature) Scalar() decimal.Decimal {
	return t.scalar
}

// Unit returns the unit of t.
func (t Temperature) Unit() Unit {
	return t.unit
}

// Scale returns the scale of t.
func (t Temperature) Scale() Scale {
	return t.unit.scale
}

// fiveNinths returns v×5/9. The quotient keeps at least as many decimal
// places as v×5, so a multiple of 9 is divided exactly.
func fiveNinths(v decimal.Decimal) decimal.Decimal {
	v = v.Mul(five)
	places := int32(decimal.DivisionPrecision)
	if p := -v.Exponent(); p > places {
		places = p
	}
	return v.DivRound(nine, places)
}

// conversions[from][to] converts a scalar between scales. Entries on the
// diagonal are never used.
var conversions = [numScales][numScales]func(decimal.Decimal) decimal.Decimal{
	celsius: {
		fahrenheit: func(v decimal.Decimal) decimal.Decimal {
			return v.Mul(oneEight).Add(thirtyTwo)
		},
		kelvin: func(v decimal.Decimal) decimal.Decimal {
			return v.Add(absoluteZeroC)
		},
	},
	fahrenheit: {
		celsius: func(v decimal.Decimal) decimal.Decimal {
			return fiveNinths(v.Sub(thirtyTwo))
		},
		kelvin: func(v decimal.Decimal) decimal.Decimal {
			return fiveNinths(v.Add(absoluteZeroF))
		},
	},
	kelvin: {
		celsius: func(v decimal.Decimal) decimal.Decimal {
			return v.Sub(absoluteZeroC)
		},
		fahrenheit: func(v decimal.Decimal) decimal.Decimal {
			return v.Mul(oneEight).Sub(absoluteZeroF)
		},
	},
}

// ConvertTo returns t expressed in the scale s. If t is already in s, t is
// returned unchanged.
func (t Temperature) ConvertTo(s Scale) Temperature {
	from := t.unit.scale
	if from == s {
		return t
	}
	return Temperature{
		scalar: conversions[from.i][s.i](t.scalar),
		unit:   s.Unit(),
	}
}

// Celsius is shorthand for t.ConvertTo(Celsius).
func (t Temperature) Celsius() Temperature { return t.ConvertTo(Celsius) }

// Fahrenheit is shorthand for t.ConvertTo(Fahrenheit).
func (t Temperature) Fahrenheit() Temperature { return t.ConvertTo(Fahrenheit) }

// Kelvin is shorthand for t.ConvertTo(Kelvin).
func (t Temperature) Kelvin() Temperature { return t.ConvertTo(Kelvin) }

// Round returns t with its value rounded to the given number of decimal
// places, half away from zero.
func (t Temperature) Round(places int32) Temperature {
	return Temperature{scalar: t.scalar.Round(places), unit: t.unit}
}

// Equal reports whether t and u have numerically equal values in the same
// scale. Trailing zeros and the case of the unit letter are ignored.
func (t Temperature) Equal(u Temperature) bool {
	return t.unit.Equal(u.unit) && t.scalar.Equal(u.scalar)
}

// String returns t as "<value> <unit>", without trailing zeros in the value.
// For example, 32.00F is formatted as "32 F".
func (t Temperature) String() string {
	return t.scalar.String() + " " + t.unit.String()
}

// MarshalText implements [encoding.TextMarshaler]. The output is accepted
// by [Parse].
func (t Temperature) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (t *Temperature) UnmarshalText(b []byte) (err error) {
	*t, err = Parse(string(b))
	return
}
