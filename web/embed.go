// Package web provides the embedded gallery UI files.
package web

import "embed"

// FS contains the embedded web UI files (index.html, static/css, static/js).
// This is exported for use by the HTTP handler to serve the gallery.
//
//go:embed index.html static
var FS embed.FS
