package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/build"
	"github.com/lone-faerie/tempconv/log"
)

const defaultConfigFile = "tempconv.yaml"

// findConfig returns the config paths to use when --config is not given.
func findConfig() []string {
	if env, ok := os.LookupEnv("TEMPCONV_CONFIG_PATH"); ok {
		return strings.Split(env, ",")
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return []string{filepath.Join(xdg, defaultConfigFile)}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Debug("No home directory, using default config", "err", err)
		return nil
	}

	return []string{filepath.Join(home, ".config", defaultConfigFile)}
}

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var cleanup []func() error

// AddCleanup registers f to be called once the command has finished.
func AddCleanup(f func() error) {
	cleanup = append(cleanup, f)
}

func runCleanup() {
	for _, f := range cleanup {
		if err := f(); err != nil {
			log.Error("Cleanup failed", err)
		}
	}
	cleanup = nil
}

func setLogHandler(cmd *cobra.Command, cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
		w = cmd.ErrOrStderr()
	case "stdout":
		w = cmd.OutOrStdout()
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)

			w = cmd.ErrOrStderr()
			break
		}

		w = f

		AddCleanup(func() error {
			log.SetTextHandler(os.Stderr)
			return f.Close()
		})
	}

	log.SetLogLevel(cfg.Log.Level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	case "tint":
		log.SetTintHandler(w, isTerminal(w))
	case "", "text":
		log.SetTextHandler(w)
	default:
		log.SetTextHandler(w)
		log.Warn("Unknown log format, using text", "format", cfg.Log.Format)
	}
}

// VersionTemplate returns the template used for --version.
func VersionTemplate() string {
	t := `{{printf "%s version %s" .Name .Version}}`
	if bt := build.BuildTime(); bt != "" {
		t += " (built " + bt + ")"
	}
	return t + "\n"
}

// flagError adds a hint to the error for a negative temperature given
// without --, which pflag reads as a shorthand flag such as -1.
func flagError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) || len(msg) <= len(prefix) {
		return err
	}
	switch c := msg[len(prefix)]; {
	case '0' <= c && c <= '9', c == '.':
		return fmt.Errorf("%w (a negative temperature must follow --, as in: tempconv -- -18C F)", err)
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
