package config

import "github.com/lone-faerie/tempconv/log"

// LogConfig configures the logger.
//
// Output is one of "stderr", "stdout", "discard" or a file path. Format is
// one of "text", "json" or "tint".
type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output,omitempty"`
	Format string    `yaml:"format,omitempty"`
}

var defaultLog = LogConfig{
	Level:  log.LevelWarn,
	Output: "stderr",
	Format: "text",
}
