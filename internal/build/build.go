// Package build provides variables that are set at build-time
// with the -X ldflag. If the values are not given at build-time,
// they will be determined from [debug.BuildInfo].
//
//	go build -ldflags "-X github.com/lone-faerie/tempconv/internal/build.version=v1.2.0"
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	version   string
	buildTime string
)

var once sync.Once

var semverRe = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRe.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func load() {
	if version != "" {
		version = semver(version)
	}
	if version != "" && buildTime != "" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" {
				buildTime = s.Value
				if t, ok := strings.CutSuffix(buildTime, "Z"); ok {
					buildTime = t + "+00:00"
				}
				break
			}
		}
	}
}

// Version returns the version of the binary, or "(devel)" when built
// from a working tree.
func Version() string {
	once.Do(load)
	return version
}

// BuildTime returns the time of the commit the binary was built from.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
