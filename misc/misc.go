// Package misc keeps small helpers which have no dependencies on the rest of
// the program and could be imported from anywhere.
package misc

import "runtime/debug"

const appName = "chb"

// GetAppName returns short program name used for logs, reports and temporary
// file prefixes.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded at build time.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetGitHash returns VCS revision recorded at build time.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
