package web

import (
	"io/fs"
	"net/http"
)

// DistServer serves files from subdir of fsys under urlPrefix.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServerFS(sub)).ServeHTTP
}
