// Package version provides build version information for exgen.
package version

// Build information. Populated at build time via ldflags.
var (
	// Version is the semantic version of this build.
	Version = "v0.3.0"
	// Commit is the git commit hash of this build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// GetVersion returns the current exgen version.
func GetVersion() string {
	return Version
}

// GetCommit returns the git commit hash of this build.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns the complete version string with commit and date.
func GetFullVersion() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
