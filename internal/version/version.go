// Package version reports the build identity of biollante-cfg.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/biollante/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/biollante/internal/version.Commit=abc1234"
var (
	// Version is the semantic version of the application
	Version = "dev"
	// Commit is the git commit hash
	Commit = ""
)

// Info is the build identity shown by the version command
type Info struct {
	Version   string
	Commit    string
	Modified  bool
	GoVersion string
	Platform  string
}

// Get returns the build identity, filling the commit from the embedded VCS
// stamp when it was not set with ldflags
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(&info, bi.Settings)
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

func applyBuildSettings(info *Info, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortHash(s.Value)
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns the version, commit and toolchain on one line
func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, %s, %s)", i.Version, commit, i.GoVersion, i.Platform)
}

// Full returns the full version string including commit
func Full() string {
	return Get().String()
}
