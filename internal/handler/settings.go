package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/mealcart/internal/store"
	"github.com/dukerupert/mealcart/internal/websocket"
	"golang.org/x/crypto/bcrypt"
)

type SettingsHandler struct {
	settingsStore *store.SettingsStore
	hub           *websocket.Hub
	logger        *slog.Logger
}

func NewSettingsHandler(ss *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsStore: ss, hub: hub, logger: logger}
}

func (h *SettingsHandler) notify() {
	if h.hub != nil {
		h.hub.Notify(websocket.EntitySettings, websocket.ActionUpdated, 0)
	}
}

func (h *SettingsHandler) PINStatus(w http.ResponseWriter, r *http.Request) {
	hash, err := h.settingsStore.PINHash()
	if err != nil {
		h.logger.Error("get pin hash", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get PIN"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": hash != ""})
}

// SetPIN sets or replaces the kitchen PIN. The route sits behind
// RequirePIN, so replacing a PIN needs the current one.
func (h *SettingsHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if len(req.PIN) < 4 || len(req.PIN) > 8 || !isDigits(req.PIN) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "PIN must be 4 to 8 digits"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash pin", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to hash PIN"})
		return
	}

	if err := h.settingsStore.SetPINHash(string(hash)); err != nil {
		h.logger.Error("set pin", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to set PIN"})
		return
	}

	h.notify()
	writeJSON(w, http.StatusOK, map[string]string{"status": "pin set"})
}

func (h *SettingsHandler) ClearPIN(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsStore.ClearPIN(); err != nil {
		h.logger.Error("clear pin", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear PIN"})
		return
	}

	h.notify()
	writeJSON(w, http.StatusOK, map[string]string{"status": "pin cleared"})
}
