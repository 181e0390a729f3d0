// Package version holds the application version string.
package version

// Version is the current Nano Gallery release. Overridden at build time via
// -ldflags "-X github.com/genz27/Nano-Gaallery/internal/version.Version=...".
var Version = "0.1.0"
