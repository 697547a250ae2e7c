// Package buildinfo carries release metadata stamped in with -ldflags -X.
package buildinfo

// Overridden at release time; the defaults identify a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
