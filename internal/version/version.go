package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/menufsm/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/menufsm/internal/version.Commit=abc123"
//
// Otherwise they are filled from the VCS stamp in the build info, or fall
// back to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fillFromSettings(info.Settings)
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromSettings reads vcs.revision, vcs.modified and vcs.time
func fillFromSettings(settings []debug.BuildSetting) {
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	if Commit == "" && values["vcs.revision"] != "" {
		Commit = values["vcs.revision"]
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if values["vcs.modified"] == "true" {
			Commit += "-dirty"
		}
	}

	if Version == "" && values["vcs.time"] != "" {
		if t, err := time.Parse(time.RFC3339, values["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Banner returns the line printed by the version command
func Banner(app string) string {
	return fmt.Sprintf("%s %s %s/%s", app, Full(), runtime.GOOS, runtime.GOARCH)
}
