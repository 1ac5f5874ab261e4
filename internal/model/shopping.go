package model

// Category is a grocery-store section.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// ConsolidatedItem is one shopping-list entry after merging every mention of
// the same ingredient in the same normalized unit.
type ConsolidatedItem struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Category Category `json:"category"`
}

type CategoryGroup struct {
	Category Category           `json:"category"`
	Items    []ConsolidatedItem `json:"items"`
}

type ShoppingList struct {
	Items      []ConsolidatedItem `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalCost  float64            `json:"total_cost"`
}

type Status string

const (
	StatusHave    Status = "have"
	StatusPartial Status = "partial"
	StatusBuy     Status = "buy"
)

// CategorizedItem is a shopping item after pantry comparison.
type CategorizedItem struct {
	ConsolidatedItem
	Status         Status    `json:"status"`
	PantryQuantity *Quantity `json:"pantry_quantity,omitempty"`
	NeedQuantity   *Quantity `json:"need_quantity,omitempty"`
	Message        string    `json:"message"`
}

// Comparison holds the three pantry buckets. Every shopping item appears in
// exactly one of them, in input order.
type Comparison struct {
	AlreadyHave []CategorizedItem `json:"already_have"`
	NeedMore    []CategorizedItem `json:"need_more"`
	NeedToBuy   []CategorizedItem `json:"need_to_buy"`
}

// Total is the number of items across all buckets.
func (c Comparison) Total() int {
	return len(c.AlreadyHave) + len(c.NeedMore) + len(c.NeedToBuy)
}
