// Package version carries the build metadata the release pipeline stamps
// into the server binary.
package version

// Overridden at build time via -ldflags; the defaults identify a local
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the build as "version (commit)" for log records and
// banners.
func String() string {
	s := Version
	if Commit != "" && Commit != "none" {
		s += " (" + Commit + ")"
	}
	if Dirty == "true" {
		s += " dirty"
	}
	return s
}
