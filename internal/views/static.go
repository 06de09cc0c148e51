package views

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*.css
var staticFS embed.FS

// StaticHandler sirve los assets embebidos (montar bajo /static/ con StripPrefix).
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// el directorio está embebido en compilación; no puede faltar
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
