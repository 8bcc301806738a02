package temperature

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmpty         = errors.New("empty temperature")
	ErrInvalidScalar = errors.New("invalid temperature value")
	ErrInvalidUnit   = errors.New("not a valid temperature unit")
)

// UnitError reports a unit that is not one of C, F or K.
type UnitError struct {
	Text string
}

func (e *UnitError) Error() string {
	return strconv.Quote(e.Text) + " is " + ErrInvalidUnit.Error()
}

func (e *UnitError) Unwrap() error {
	return ErrInvalidUnit
}

// ParseError is returned by [Parse] when the value, the unit, or both are
// invalid. Both causes are reported together.
type ParseError struct {
	Input  string
	Scalar error // nil if the value was valid
	Unit   error // nil if the unit was valid
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("unable to convert ")
	b.WriteString(strconv.Quote(e.Input))
	b.WriteString(" into temperature")
	sep := ": "
	for _, err := range e.Unwrap() {
		b.WriteString(sep)
		b.WriteString(err.Error())
		sep = "; "
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Scalar != nil {
		errs = append(errs, e.Scalar)
	}
	if e.Unit != nil {
		errs = append(errs, e.Unit)
	}
	return errs
}
