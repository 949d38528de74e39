// Package version holds the program version.
package version

// Version can be overridden at build time with
// -ldflags "-X fa2dbg/internal/version.Version=..."
var Version = "0.3.0"
