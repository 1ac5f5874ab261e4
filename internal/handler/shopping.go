package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/pantry"
	"github.com/dukerupert/mealcart/internal/shopping"
	"github.com/dukerupert/mealcart/internal/store"
)

// ShoppingHandler derives the shopping list from the stored plan on every
// request; nothing about the list itself is persisted.
type ShoppingHandler struct {
	planStore   *store.MealPlanStore
	pantryStore *store.PantryStore
	logger      *slog.Logger
}

func NewShoppingHandler(ps *store.MealPlanStore, pantryStore *store.PantryStore, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{planStore: ps, pantryStore: pantryStore, logger: logger}
}

func (h *ShoppingHandler) build(w http.ResponseWriter) (model.ShoppingList, bool) {
	plan, err := h.planStore.Plan()
	if err != nil {
		h.logger.Error("load meal plan", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load meal plan"})
		return model.ShoppingList{}, false
	}
	return shopping.Build(plan), true
}

func (h *ShoppingHandler) compare(w http.ResponseWriter) (model.Comparison, bool) {
	list, ok := h.build(w)
	if !ok {
		return model.Comparison{}, false
	}
	entries, err := h.pantryStore.List()
	if err != nil {
		h.logger.Error("list pantry", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list pantry"})
		return model.Comparison{}, false
	}
	return pantry.Compare(list.Items, entries), true
}

func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	list, ok := h.build(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type groupsResponse struct {
	Groups     []model.CategoryGroup `json:"groups"`
	TotalItems int                   `json:"total_items"`
	TotalCost  float64               `json:"total_cost"`
}

func (h *ShoppingHandler) Groups(w http.ResponseWriter, r *http.Request) {
	list, ok := h.build(w)
	if !ok {
		return
	}
	groups := grocery.GroupByCategory(list.Items)
	if groups == nil {
		groups = []model.CategoryGroup{}
	}
	writeJSON(w, http.StatusOK, groupsResponse{Groups: groups, TotalItems: list.TotalItems, TotalCost: list.TotalCost})
}

func (h *ShoppingHandler) Export(w http.ResponseWriter, r *http.Request) {
	list, ok := h.build(w)
	if !ok {
		return
	}
	writeText(w, "shopping-list.txt", shopping.Export(list))
}

type compareResponse struct {
	model.Comparison
	Summary pantry.Summary `json:"summary"`
}

func (h *ShoppingHandler) Compare(w http.ResponseWriter, r *http.Request) {
	cmp, ok := h.compare(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Comparison: cmp, Summary: pantry.Summarize(cmp)})
}

func (h *ShoppingHandler) CompareExport(w http.ResponseWriter, r *http.Request) {
	cmp, ok := h.compare(w)
	if !ok {
		return
	}
	writeText(w, "pantry-check.txt", shopping.ExportComparison(cmp))
}

func (h *ShoppingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, grocery.Categories())
}
