package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
// Levels share their numbering with [slog.Level], with the addition
// of [LevelDisabled] which suppresses every record.
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level.
// Examples:
//
//	LevelWarn.String() => "WARN"
//	(LevelInfo+2).String() => "INFO+2"
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}

	return slog.Level(l).String()
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// MarshalJSON implements [encoding/json.Marshaler]
// by quoting the output of [Level.String].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
// It accepts any string produced by [Level.MarshalJSON], ignoring case.
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "disable", "disabled", "false", "off":
		*l = LevelDisabled
	default:
		return (*slog.Level)(l).UnmarshalJSON(data)
	}

	return nil
}

// AppendText implements [encoding.TextAppender]
// by calling [Level.String].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler]
// by calling [Level.AppendText].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts any string produced by [Level.MarshalText], ignoring case,
// as well as "off" and "false" for [LevelDisabled].
// Levels in config files are decoded through this method.
func (l *Level) UnmarshalText(data []byte) (err error) {
	switch string(bytes.ToLower(data)) {
	case "disable", "disabled", "false", "off":
		*l = LevelDisabled
	default:
		err = (*slog.Level)(l).UnmarshalText(data)
	}

	return
}

// LevelFlag implements [github.com/spf13/pflag.Value] so a Level can be
// given on the command line.
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return (Level)(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Type() string {
	return "level"
}
