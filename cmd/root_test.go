package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/temperature"
)

// isolate keeps the tests from reading a real user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TEMPCONV_CONFIG_PATH", filepath.Join(dir, defaultConfigFile))
	return dir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestConvert(t *testing.T) {
	isolate(t)

	var tests = []struct {
		name string
		args []string
		want string
	}{
		{"fahrenheit to celsius", []string{"32F", "C"}, "32 F is equal to 0 C\n"},
		{"kelvin to celsius", []string{"234.63K", "c"}, "234.63 K is equal to -38.52 C\n"},
		{"negative celsius", []string{"--", "-18C", "F"}, "-18 C is equal to -0.4 F\n"},
		{"celsius to kelvin", []string{"25C", "K"}, "25 C is equal to 298.15 K\n"},
		{"identity", []string{"32.00F", "f"}, "32 F is equal to 32 F\n"},
		{"lower case unit", []string{"100c", "F"}, "100 c is equal to 212 F\n"},
		{"default unit", []string{"212F"}, "212 F is equal to 100 C\n"},
		{"precision", []string{"--precision", "2", "33F", "C"}, "33 F is equal to 0.56 C\n"},
		{"precision shorthand", []string{"-p", "0", "0K", "F"}, "0 K is equal to -460 F\n"},
		{"unit flag", []string{"--unit", "kelvin", "0C"}, "0 C is equal to 273.15 K\n"},
		{"unit shorthand", []string{"-u", "f", "100C"}, "100 C is equal to 212 F\n"},
		{"unit argument overrides flag", []string{"-u", "F", "0C", "K"}, "0 C is equal to 273.15 K\n"},
		{"many decimals", []string{"0.12345678901234567891C", "F"}, "0.12345678901234567891 C is equal to 32.222222222222222222038 F\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	isolate(t)

	var tests = []struct {
		name    string
		args    []string
		target  error
		message string
	}{
		{"invalid unit", []string{"15d", "C"}, temperature.ErrInvalidUnit, `"d" is not a valid temperature unit`},
		{"missing unit", []string{"1234.614", "C"}, temperature.ErrInvalidUnit, `"4" is not a valid temperature unit`},
		{"invalid scalar", []string{"123sdafsd23445.4F", "C"}, temperature.ErrInvalidScalar, "invalid temperature value"},
		{"empty", []string{"", "C"}, temperature.ErrEmpty, "empty temperature"},
		{"invalid target", []string{"32F", "X"}, temperature.ErrInvalidUnit, `"X" is not a valid temperature unit`},
		{"long target", []string{"32F", "CF"}, temperature.ErrInvalidUnit, `"CF" is not a valid temperature unit`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var exit *ExitError
			require.ErrorAs(t, err, &exit)
			assert.Equal(t, 1, exit.Code)

			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, tt.message)
			assert.NotContains(t, stderr, "Usage:")
		})
	}
}

func TestUsageError(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{}, {"1C", "F", "K"}, {"--bogus", "1C"}} {
		_, stderr, err := execute(t, args...)

		var exit *ExitError
		require.ErrorAs(t, err, &exit, "%q", args)
		assert.Equal(t, 2, exit.Code, "%q", args)
		assert.Contains(t, stderr, "Usage:", "%q", args)
	}
}

func TestNegativeWithoutSeparator(t *testing.T) {
	isolate(t)

	for _, arg := range []string{"-18C", "-.5K"} {
		_, stderr, err := execute(t, arg, "F")

		var exit *ExitError
		require.ErrorAs(t, err, &exit, arg)
		assert.Equal(t, 2, exit.Code, arg)
		assert.Contains(t, stderr, "must follow --", arg)
	}

	_, stderr, err := execute(t, "-x", "1C")
	require.Error(t, err)
	assert.NotContains(t, stderr, "must follow --")
}

func TestInvalidUnitFlag(t *testing.T) {
	isolate(t)

	_, stderr, err := execute(t, "--unit", "rankine", "0C")

	var exit *ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.Code)
	assert.Contains(t, stderr, "not a valid temperature unit")
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Regexp(t, `^tempconv version \S+`, stdout)
}

func TestConfigUnit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "kelvin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: K\nprecision: 1\n"), 0644))

	stdout, _, err := execute(t, "--config", path, "0C")
	require.NoError(t, err)
	assert.Equal(t, "0 C is equal to 273.2 K\n", stdout)

	// An explicit unit overrides the config.
	stdout, _, err = execute(t, "-c", path, "0C", "F")
	require.NoError(t, err)
	assert.Equal(t, "0 C is equal to 32 F\n", stdout)
}

func TestConfigFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, defaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("unit: fahrenheit\n"), 0644))

	stdout, _, err := execute(t, "100C")
	require.NoError(t, err)
	assert.Equal(t, "100 C is equal to 212 F\n", stdout)
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: rankine\n"), 0644))

	_, stderr, err := execute(t, "-c", path, "0C")

	var exit *ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.Code)
	assert.True(t, errors.Is(err, temperature.ErrInvalidUnit))
	assert.Contains(t, stderr, path)
}

func TestLogFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "tempconv.log")
	path := filepath.Join(dir, "log.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n  output: "+logPath+"\n"), 0644))

	stdout, stderr, err := execute(t, "-c", path, "32F", "C")
	require.NoError(t, err)
	assert.Equal(t, "32 F is equal to 0 C\n", stdout)
	assert.Empty(t, stderr)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"Converted"`)
	assert.Contains(t, string(b), `"result":"0 C"`)

	// The file is closed once the command is done, so later records must
	// not be sent to it.
	log.Error("After run", nil)
	after, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, b, after)
}

func TestUnknownLogFormat(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0644))

	stdout, stderr, err := execute(t, "-c", path, "1C", "K")
	require.NoError(t, err)
	assert.Equal(t, "1 C is equal to 274.15 K\n", stdout)
	assert.Contains(t, stderr, "Unknown log format")
	assert.Contains(t, stderr, "format=xml")
}

func TestLogFlag(t *testing.T) {
	isolate(t)

	_, stderr, err := execute(t, "--log", "debug", "1K", "K")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted")

	_, _, err = execute(t, "--log", "chatty", "1K", "K")
	var exit *ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.Code)
}

func TestUnits(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "units")
	require.NoError(t, err)
	assert.Equal(t, "UNIT  SCALE       ABSOLUTE ZERO\n"+
		"C     Celsius     -273.15 C\n"+
		"F     Fahrenheit  -459.67 F\n"+
		"K     Kelvin      0 K\n", stdout)

	stdout, _, err = execute(t, "units", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "C, F, K\n", stdout)
}
