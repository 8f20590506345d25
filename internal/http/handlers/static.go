package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ServeSPA serves the built UI from StaticDir. Unknown paths fall back to
// index.html for client-side routing; API paths never do.
func (a *App) ServeSPA(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		a.error(w, http.StatusNotFound, "not found")
		return
	}
	if a.StaticDir == "" {
		a.error(w, http.StatusNotFound, "not found")
		return
	}

	path := filepath.Join(a.StaticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(a.StaticDir, "index.html"))
}
