package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"imagestudio/internal/imagegen"
)

// App bundles the handlers' dependencies: the orchestrator behind its two
// interfaces, the logger, and the directory the built UI is served from.
type App struct {
	Generator imagegen.Generator
	Editor    imagegen.Editor
	Logger    zerolog.Logger
	StaticDir string
}

func NewApp(gen imagegen.Generator, ed imagegen.Editor, logger zerolog.Logger, staticDir string) *App {
	return &App{Generator: gen, Editor: ed, Logger: logger, StaticDir: staticDir}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the API's single error shape: {"error": message}.
func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
