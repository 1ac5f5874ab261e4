package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type staticPIN struct {
	hash string
	err  error
}

func (s staticPIN) PINHash() (string, error) { return s.hash, s.err }

func hashPIN(t *testing.T, pin string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	return string(h)
}

func guarded(src PINSource, max int) http.Handler {
	g := &PINGuard{
		Source:      src,
		Limiter:     NewRateLimiter(),
		MaxAttempts: max,
		Window:      time.Minute,
		Logger:      slog.Default(),
	}
	return g.RequirePIN(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func do(h http.Handler, pin string) int {
	req := httptest.NewRequest("POST", "/api/pantry", nil)
	req.RemoteAddr = "192.168.1.50:4000"
	if pin != "" {
		req.Header.Set(PINHeader, pin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequirePINNotConfigured(t *testing.T) {
	h := guarded(staticPIN{}, 3)
	if got := do(h, ""); got != http.StatusNoContent {
		t.Errorf("status = %d, want %d", got, http.StatusNoContent)
	}
}

func TestRequirePIN(t *testing.T) {
	h := guarded(staticPIN{hash: hashPIN(t, "1234")}, 3)

	tests := []struct {
		pin  string
		want int
	}{
		{"", http.StatusUnauthorized},
		{"0000", http.StatusUnauthorized},
		{"1234", http.StatusNoContent},
	}
	for _, tt := range tests {
		if got := do(h, tt.pin); got != tt.want {
			t.Errorf("pin %q: status = %d, want %d", tt.pin, got, tt.want)
		}
	}
}

func TestRequirePINLockout(t *testing.T) {
	h := guarded(staticPIN{hash: hashPIN(t, "1234")}, 3)

	for i := 0; i < 3; i++ {
		if got := do(h, "9999"); got != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, got, http.StatusUnauthorized)
		}
	}
	if got := do(h, "1234"); got != http.StatusTooManyRequests {
		t.Errorf("after lockout: status = %d, want %d", got, http.StatusTooManyRequests)
	}
}

func TestRequirePINSuccessResetsAttempts(t *testing.T) {
	h := guarded(staticPIN{hash: hashPIN(t, "1234")}, 2)

	do(h, "9999")
	if got := do(h, "1234"); got != http.StatusNoContent {
		t.Fatalf("correct pin: status = %d", got)
	}
	do(h, "9999")
	if got := do(h, "1234"); got != http.StatusNoContent {
		t.Errorf("after reset: status = %d, want %d", got, http.StatusNoContent)
	}
}

func TestRequirePINSourceError(t *testing.T) {
	h := guarded(staticPIN{err: errors.New("db closed")}, 3)
	if got := do(h, "1234"); got != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}
