package handler

import (
	"io/fs"
	"net/http"

	"github.com/genz27/Nano-Gaallery/web"
)

// WebUI returns an HTTP handler serving the embedded gallery UI at /.
// Unknown paths fall back to index.html.
func WebUI() http.Handler {
	staticFS, err := fs.Sub(web.FS, ".")
	if err != nil {
		// This should never happen with a valid embed
		panic("failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(staticFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" {
			if _, err := fs.Stat(staticFS, path[1:]); err != nil {
				// Unknown path; serve index.html
				r.URL.Path = "/"
			}
		}

		fileServer.ServeHTTP(w, r)
	})
}
