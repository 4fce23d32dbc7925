package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/**
var staticFS embed.FS

// FS returns an http.FileSystem for the embedded page assets.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unreachable while the static directory is embedded.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
