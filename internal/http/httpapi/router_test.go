package httpapi

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"imagestudio/internal/http/handlers"
	"imagestudio/internal/imagegen"
	"imagestudio/internal/infra"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(ctx context.Context, p imagegen.GenerateParams) ([]byte, error) {
	return []byte("generated"), nil
}

type fixedEditor struct{}

func (fixedEditor) Edit(ctx context.Context, p imagegen.EditParams) ([]byte, error) {
	return []byte("edited"), nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>studio</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := handlers.NewApp(fixedGenerator{}, fixedEditor{}, zerolog.New(io.Discard), dir)
	cfg := &infra.Config{Port: "8080", RateLimitPerMin: 100}
	return NewRouter(app, cfg, zerolog.New(io.Discard))
}

func TestRouterGenerateRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"a fox","aspectRatio":"1:1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := base64.StdEncoding.EncodeToString([]byte("generated"))
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestRouterEditRoute(t *testing.T) {
	router := testRouter(t)

	img := base64.StdEncoding.EncodeToString([]byte("img"))
	body := `{"prompt":"p","imageBase64Data":"` + img + `","mimeType":"image/png"}`
	req := httptest.NewRequest(http.MethodPost, "/api/edit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRouterHealthz(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouterUnknownAPIPathIs404NotSPA(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<html>") {
		t.Fatalf("API path fell through to the SPA: %s", rec.Body.String())
	}
}

func TestRouterClientRouteFallsBackToIndex(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html>studio</html>") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestRouterRequestIDHeader(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}
