// Command tempconv converts a temperature between Celsius, Fahrenheit,
// and Kelvin.
//
//	$ tempconv 32F C
//	32 F is equal to 0 C
//
// Full documentation is available with tempconv --help.
package main

import (
	"errors"
	"os"

	"github.com/lone-faerie/tempconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		code := 1

		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			code = exit.Code
		}

		os.Exit(code)
	}
}
