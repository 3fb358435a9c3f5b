// Package version reports the adapter's build version, embedded at
// compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/travelgate/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time using -ldflags. Version falls back to "dev" and the
// commit to the module's VCS stamp when unset.
var (
	Version   = "dev"
	GitCommit = ""
)

// Short returns "version" or "version-commit" when a commit is known.
func Short() string {
	commit := GitCommit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s-%s", Version, commit)
}

// UserAgent returns the identifier sent with every outbound request.
func UserAgent() string {
	return "travelgate/" + Short()
}
