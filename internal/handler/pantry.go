package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/store"
	"github.com/dukerupert/mealcart/internal/websocket"
)

type PantryHandler struct {
	pantryStore *store.PantryStore
	hub         *websocket.Hub
	logger      *slog.Logger
}

func NewPantryHandler(ps *store.PantryStore, hub *websocket.Hub, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{pantryStore: ps, hub: hub, logger: logger}
}

func (h *PantryHandler) notify(action string, id int64) {
	if h.hub != nil {
		h.hub.Notify(websocket.EntityPantryEntry, action, id)
	}
}

func decodePantryEntry(r *http.Request) (model.PantryEntry, string) {
	var req model.PantryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.PantryEntry{}, "invalid JSON"
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.PantryEntry{}, "name is required"
	}
	return req.Entry(), ""
}

func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.pantryStore.List()
	if err != nil {
		h.logger.Error("list pantry", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list pantry"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *PantryHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, msg := decodePantryEntry(r)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	entry, err := h.pantryStore.Create(in)
	if err != nil {
		h.logger.Error("create pantry entry", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create pantry entry"})
		return
	}

	h.notify(websocket.ActionCreated, entry.ID)
	writeJSON(w, http.StatusCreated, entry)
}

func (h *PantryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	in, msg := decodePantryEntry(r)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	entry, err := h.pantryStore.Update(id, in)
	if err != nil {
		h.logger.Error("update pantry entry", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update pantry entry"})
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "pantry entry not found"})
		return
	}

	h.notify(websocket.ActionUpdated, entry.ID)
	writeJSON(w, http.StatusOK, entry)
}

func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.pantryStore.GetByID(id)
	if err != nil {
		h.logger.Error("get pantry entry", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get pantry entry"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "pantry entry not found"})
		return
	}

	if err := h.pantryStore.Delete(id); err != nil {
		h.logger.Error("delete pantry entry", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete pantry entry"})
		return
	}

	h.notify(websocket.ActionDeleted, id)
	w.WriteHeader(http.StatusNoContent)
}
