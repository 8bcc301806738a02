package temperature_test

import (
	"errors"
	"fmt"

	"github.com/lone-faerie/tempconv/temperature"
)

func ExampleParse() {
	t, err := temperature.Parse("32F")
	if err != nil {
		panic(err)
	}
	fmt.Println(t, "is equal to", t.ConvertTo(temperature.Celsius))
	// Output: 32 F is equal to 0 C
}

func ExampleParse_error() {
	_, err := temperature.Parse("12x3q")
	fmt.Println(errors.Is(err, temperature.ErrInvalidScalar), errors.Is(err, temperature.ErrInvalidUnit))
	// Output: true true
}

func ExampleTemperature_ConvertTo() {
	t := temperature.MustParse("-18C")
	fmt.Println(t.ConvertTo(temperature.Fahrenheit))
	fmt.Println(t.ConvertTo(temperature.Kelvin))
	fmt.Println(t.ConvertTo(temperature.Celsius))
	// Output:
	// -0.4 F
	// 255.15 K
	// -18 C
}

func ExampleTemperature_String() {
	fmt.Println(temperature.MustParse("32.00F"))
	fmt.Println(temperature.MustParse("32.50f"))
	// Output:
	// 32 F
	// 32.5 f
}
