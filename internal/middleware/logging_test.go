package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Write([]byte("hello"))
		}
	}))

	tests := []struct {
		path string
		want []string
	}{
		{"/api/pantry", []string{"level=INFO", "path=/api/pantry", "status=200", "bytes=5"}},
		{"/missing", []string{"level=WARN", "status=404"}},
		{"/health", nil},
	}
	for _, tt := range tests {
		buf.Reset()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", tt.path, nil))
		out := buf.String()
		if tt.want == nil && out != "" {
			t.Errorf("%s: expected no info log, got %q", tt.path, out)
		}
		for _, w := range tt.want {
			if !strings.Contains(out, w) {
				t.Errorf("%s: log %q missing %q", tt.path, out, w)
			}
		}
	}
}
