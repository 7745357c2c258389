// Package version holds the release string shared by all ichorkit tools.
package version

// Version is overridden at link time with
// -ldflags "-X ichorkit/internal/version.Version=...".
var Version = "0.4.0"
