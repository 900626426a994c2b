package version

import (
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X combobox/internal/version.Version=v1.2.3 \
//	                   -X combobox/internal/version.Commit=abc123"
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Commit == "" {
		Commit = commitFromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
}

// commitFromBuildInfo reads the VCS revision Go stamps into the binary
func commitFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if revision == "" {
		return "unknown"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified == "true" {
		revision += "-dirty"
	}
	return revision
}

// String formats version and commit for display
func String() string {
	return Version + " (commit: " + Commit + ")"
}
