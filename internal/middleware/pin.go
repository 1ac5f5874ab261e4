package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PINHeader carries the kitchen PIN on guarded requests.
const PINHeader = "X-Kitchen-PIN"

// PINSource looks up the bcrypt hash of the kitchen PIN. An empty hash means
// no PIN is configured.
type PINSource interface {
	PINHash() (string, error)
}

// PINGuard limits wrong PIN attempts per client IP.
type PINGuard struct {
	Source      PINSource
	Limiter     *RateLimiter
	MaxAttempts int
	Window      time.Duration
	Logger      *slog.Logger
}

// RequirePIN lets a request through when no PIN is configured or the
// request carries the right one. After MaxAttempts wrong PINs in Window
// the client gets 429 until the window passes, even with the right PIN.
func (g *PINGuard) RequirePIN(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash, err := g.Source.PINHash()
		if err != nil {
			g.Logger.Error("load pin hash", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to check PIN")
			return
		}
		if hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := "pin:" + RealIP(r)
		if g.Limiter.Exceeded(key, g.MaxAttempts) {
			writeError(w, http.StatusTooManyRequests, "too many PIN attempts")
			return
		}

		pin := r.Header.Get(PINHeader)
		if pin == "" {
			writeError(w, http.StatusUnauthorized, "PIN required")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
			g.Limiter.Allow(key, g.MaxAttempts, g.Window)
			g.Logger.Warn("incorrect pin", "remote", RealIP(r), "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "incorrect PIN")
			return
		}

		g.Limiter.Reset(key)
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
