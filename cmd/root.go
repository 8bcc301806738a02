// Package cmd implements the tempconv command line.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/build"
	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/temperature"
)

//go:embed help/root.md
var rootHelp string

// extraCommands are added to the root command by optional build tags.
var extraCommands []func() *cobra.Command

type rootOptions struct {
	configPath []string
	precision  int32
	unit       temperature.Scale
	logLevel   log.LevelFlag

	cfg *config.Config
}

// NewCmdRoot returns the root [cobra.Command] which converts a temperature.
//
// Usage:
//
//	tempconv [flags] <original> [unit]
//	tempconv [command]
//
// Available Commands:
//
//	units       List supported temperature units
//
// Flags:
//
//	-c, --config strings    Path(s) to config file/directory
//	-l, --log level         Log level (default WARN)
//	-p, --precision int32   Round the converted value to this many decimal places (default -1)
//	-u, --unit unit         Unit to convert into when none is given (default Celsius)
//	-h, --help              help for tempconv
//	-v, --version           version for tempconv
func NewCmdRoot() *cobra.Command {
	opts := &rootOptions{
		logLevel: log.LevelFlag(log.LevelWarn),
	}

	version := build.Version()
	if version == "" {
		version = "(devel)"
	}

	cmd := &cobra.Command{
		Use:   "tempconv [flags] <original> [unit]",
		Short: "Convert between Celsius, Fahrenheit, and Kelvin",
		Long:  rootHelp,
		Example: `  tempconv 32F C
  tempconv 273.15k f
  tempconv --precision 2 100F K
  tempconv --unit kelvin 0C
  tempconv -- -40C F`,
		Version:           version,
		Args:              cobra.RangeArgs(1, 2),
		PersistentPreRunE: opts.loadConfig,
		RunE:              opts.convert,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	cmd.Flags().SortFlags = false
	cmd.PersistentFlags().StringSliceVarP(&opts.configPath, "config", "c", nil, "Path(s) to config file/directory")
	cmd.PersistentFlags().VarP(&opts.logLevel, "log", "l", "Log level")
	cmd.Flags().Int32VarP(&opts.precision, "precision", "p", -1, "Round the converted value to this many decimal places")
	cmd.Flags().VarP(&opts.unit, "unit", "u", "Unit to convert into when none is given")

	cmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	cmd.SetVersionTemplate(VersionTemplate())
	cmd.SetFlagErrorFunc(flagError)

	cmd.AddCommand(NewCmdUnits())
	for _, f := range extraCommands {
		cmd.AddCommand(f())
	}

	return cmd
}

func (o *rootOptions) loadConfig(cmd *cobra.Command, _ []string) (err error) {
	log.SetLogLevel(log.LevelWarn)

	paths := o.configPath
	if len(paths) == 0 {
		paths = findConfig()
	}

	o.cfg, err = config.Load(paths...)
	if err != nil {
		return &ExitError{Err: err, Code: 1}
	}

	if f := cmd.Flags().Lookup("log"); f != nil && f.Changed {
		o.cfg.Log.Level = log.Level(o.logLevel)
	}
	if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
		o.cfg.Precision = o.precision
	}
	if f := cmd.Flags().Lookup("unit"); f != nil && f.Changed {
		o.cfg.Unit = o.unit
	}

	setLogHandler(cmd, o.cfg)
	log.Debug("Config loaded", "unit", o.cfg.Unit, "precision", o.cfg.Precision)

	return nil
}

func (o *rootOptions) convert(cmd *cobra.Command, args []string) error {
	original, err := temperature.Parse(args[0])
	if err != nil {
		return &ExitError{Err: err, Code: 1}
	}

	scale := o.cfg.Unit
	if len(args) > 1 {
		unit, err := temperature.ParseUnit(args[1])
		if err != nil {
			return &ExitError{Err: err, Code: 1}
		}
		scale = unit.Scale()
	}

	converted := original.ConvertTo(scale)
	if o.cfg.Precision >= 0 {
		converted = converted.Round(o.cfg.Precision)
	}
	log.Debug("Converted", "original", original, "unit", scale, "result", converted)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), original, "is equal to", converted)
	return err
}

// Execute runs the command line with the arguments of the process.
// The returned error, if any, has already been printed and is an
// [*ExitError] holding the exit code.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	defer runCleanup()

	root := NewCmdRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	c, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	c.PrintErrln("Error:", err)

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit
	}

	// Anything not returned by a command is a usage error from cobra.
	c.SetOut(stderr)
	c.Usage()

	return &ExitError{Err: err, Code: 2}
}
