package grocery

import (
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"onion", "Produce"},
		{"garlic", "Produce"},
		{"bell pepper", "Produce"},
		{"eggplant", "Produce"},
		{"butternut squash", "Produce"},
		{"green beans", "Produce"},
		{"ground beef", "Meat & Seafood"},
		{"chicken breast", "Meat & Seafood"},
		{"eggs", "Dairy & Eggs"},
		{"unsalted butter", "Dairy & Eggs"},
		{"heavy cream", "Dairy & Eggs"},
		{"spaghetti", "Grains & Bread"},
		{"brown rice", "Grains & Bread"},
		{"hamburger buns", "Grains & Bread"},
		{"chicken broth", "Canned & Jarred"},
		{"black beans", "Canned & Jarred"},
		{"coconut milk", "Canned & Jarred"},
		{"all-purpose flour", "Baking & Snacks"},
		{"chocolate chips", "Baking & Snacks"},
		{"olive oil", "Oils & Condiments"},
		{"peanut butter", "Oils & Condiments"},
		{"rice vinegar", "Oils & Condiments"},
		{"garlic powder", "Seasonings"},
		{"black pepper", "Seasonings"},
		{"kosher salt", "Seasonings"},
		{"frozen peas", "Frozen"},
		{"egg noodles", "Grains & Bread"},
		{"butter beans", "Produce"},
		{"butter lettuce", "Produce"},
		{"sugar snap peas", "Produce"},
		{"snow peas", "Produce"},
		{"almond milk", "Dairy & Eggs"},
		{"sliced almonds", "Baking & Snacks"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got.Name != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got.Name, tt.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ONION", "Produce"},
		{"Garlic Powder", "Seasonings"},
		{"  Frozen Peas  ", "Frozen"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got.Name != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got.Name, tt.want)
		}
	}
}

func TestCategorizeUnknownItem(t *testing.T) {
	for _, input := range []string{"", "widget", "xyz123", "random thing"} {
		got := Categorize(input)
		if got != Other {
			t.Errorf("Categorize(%q) = %q, want %q", input, got.Name, Other.Name)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	if cats[0] != Produce {
		t.Errorf("first category = %q, want Produce", cats[0].Name)
	}
	if cats[len(cats)-1] != Other {
		t.Errorf("last category = %q, want Other", cats[len(cats)-1].Name)
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].Order <= cats[i-1].Order {
			t.Errorf("category %q order %d not after %q order %d", cats[i].Name, cats[i].Order, cats[i-1].Name, cats[i-1].Order)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	items := []model.ConsolidatedItem{
		{Name: "widget", Category: Other},
		{Name: "tomato", Category: Produce},
		{Name: "milk", Category: Dairy},
		{Name: "Basil", Category: Produce},
		{Name: "apple", Category: Produce},
	}

	groups := GroupByCategory(items)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantOrder := []string{"Produce", "Dairy & Eggs", "Other"}
	for i, name := range wantOrder {
		if groups[i].Category.Name != name {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i].Category.Name, name)
		}
	}

	wantProduce := []string{"apple", "Basil", "tomato"}
	for i, name := range wantProduce {
		if groups[0].Items[i].Name != name {
			t.Errorf("produce[%d] = %q, want %q", i, groups[0].Items[i].Name, name)
		}
	}
}

func TestGroupByCategoryEmpty(t *testing.T) {
	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
