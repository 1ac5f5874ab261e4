package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/store"
	"github.com/dukerupert/mealcart/internal/websocket"
)

type MealPlanHandler struct {
	planStore   *store.MealPlanStore
	recipeStore *store.RecipeStore
	hub         *websocket.Hub
	logger      *slog.Logger
}

func NewMealPlanHandler(ps *store.MealPlanStore, rs *store.RecipeStore, hub *websocket.Hub, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{planStore: ps, recipeStore: rs, hub: hub, logger: logger}
}

func (h *MealPlanHandler) notify(action string) {
	if h.hub != nil {
		h.hub.Notify(websocket.EntityMealPlan, action, 0)
	}
}

type mealPlanResponse struct {
	Days  []string         `json:"days"`
	Meals []string         `json:"meals"`
	Slots []model.PlanSlot `json:"slots"`
}

func (h *MealPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	slots, err := h.planStore.ListSlots()
	if err != nil {
		h.logger.Error("list meal plan", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get meal plan"})
		return
	}
	writeJSON(w, http.StatusOK, mealPlanResponse{Days: model.Days, Meals: model.Meals, Slots: slots})
}

// parseSlot validates the {day} and {meal} path values.
func parseSlot(w http.ResponseWriter, r *http.Request) (day, meal string, ok bool) {
	day, err := model.NormalizeDay(r.PathValue("day"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day must be monday through sunday"})
		return "", "", false
	}
	meal, err = model.NormalizeMeal(r.PathValue("meal"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "meal must be breakfast, lunch, or dinner"})
		return "", "", false
	}
	return day, meal, true
}

func (h *MealPlanHandler) SetSlot(w http.ResponseWriter, r *http.Request) {
	day, meal, ok := parseSlot(w, r)
	if !ok {
		return
	}

	var req struct {
		RecipeID int64 `json:"recipe_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.RecipeID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "recipe_id is required"})
		return
	}

	recipe, err := h.recipeStore.GetByID(req.RecipeID)
	if err != nil {
		h.logger.Error("get recipe", "id", req.RecipeID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get recipe"})
		return
	}
	if recipe == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "recipe not found"})
		return
	}

	if err := h.planStore.SetSlot(day, meal, recipe.ID); err != nil {
		h.logger.Error("set meal plan slot", "day", day, "meal", meal, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to set slot"})
		return
	}

	h.notify(websocket.ActionUpdated)
	writeJSON(w, http.StatusOK, model.PlanSlot{Day: day, Meal: meal, RecipeID: recipe.ID, RecipeName: recipe.Name})
}

func (h *MealPlanHandler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	day, meal, ok := parseSlot(w, r)
	if !ok {
		return
	}

	if err := h.planStore.ClearSlot(day, meal); err != nil {
		h.logger.Error("clear meal plan slot", "day", day, "meal", meal, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear slot"})
		return
	}

	h.notify(websocket.ActionUpdated)
	w.WriteHeader(http.StatusNoContent)
}

func (h *MealPlanHandler) Clear(w http.ResponseWriter, r *http.Request) {
	count, err := h.planStore.ClearAll()
	if err != nil {
		h.logger.Error("clear meal plan", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear meal plan"})
		return
	}

	h.notify(websocket.ActionCleared)
	writeJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}
