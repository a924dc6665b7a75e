// Package version provides build-time version information for twcontrast.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
//
//	-ldflags "-X github.com/jmylchreest/twcontrast/internal/version.Version=x.y.z"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit == "unknown" || info.Date == "unknown" {
		return fmt.Sprintf("twcontrast version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("twcontrast version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version, used by --version.
func Short() string {
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
