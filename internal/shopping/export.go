package shopping

import (
	"fmt"
	"strings"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/units"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func displayName(name string) string {
	return titleCaser.String(strings.ToLower(name))
}

// Export renders the list grouped by grocery section, one line per item,
// followed by a totals footer.
func Export(list model.ShoppingList) string {
	var b strings.Builder
	b.WriteString("Shopping List\n")
	b.WriteString("=============\n")

	groups := grocery.GroupByCategory(list.Items)
	if len(groups) == 0 {
		b.WriteString("\nNothing to buy this week.\n")
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s %s\n", g.Category.Icon, g.Category.Name)
		for _, item := range g.Items {
			fmt.Fprintf(&b, "- %s: %s\n", displayName(item.Name), units.Display(item.Quantity.Value, item.Quantity.Unit))
		}
	}

	fmt.Fprintf(&b, "\nTotal items: %d\n", list.TotalItems)
	fmt.Fprintf(&b, "Estimated cost: $%.2f\n", list.TotalCost)
	return b.String()
}

// ExportComparison renders the pantry buckets as plain text.
func ExportComparison(cmp model.Comparison) string {
	var b strings.Builder
	b.WriteString("Pantry Check\n")
	b.WriteString("============\n")

	writeBucket(&b, "Already have", cmp.AlreadyHave)
	writeBucket(&b, "Need more", cmp.NeedMore)
	writeBucket(&b, "Need to buy", cmp.NeedToBuy)
	return b.String()
}

func writeBucket(b *strings.Builder, title string, items []model.CategorizedItem) {
	fmt.Fprintf(b, "\n%s (%d)\n", title, len(items))
	for _, item := range items {
		q := item.Quantity
		if item.NeedQuantity != nil {
			q = *item.NeedQuantity
		}
		fmt.Fprintf(b, "- %s: %s", displayName(item.Name), units.Display(q.Value, q.Unit))
		if item.Message != "" {
			fmt.Fprintf(b, " (%s)", item.Message)
		}
		b.WriteString("\n")
	}
}
