package grocery

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dukerupert/mealcart/internal/model"
)

var (
	Produce    = model.Category{Name: "Produce", Icon: "🥬", Order: 1}
	Meat       = model.Category{Name: "Meat & Seafood", Icon: "🥩", Order: 2}
	Dairy      = model.Category{Name: "Dairy & Eggs", Icon: "🥛", Order: 3}
	Grains     = model.Category{Name: "Grains & Bread", Icon: "🍞", Order: 4}
	Canned     = model.Category{Name: "Canned & Jarred", Icon: "🥫", Order: 5}
	Baking     = model.Category{Name: "Baking & Snacks", Icon: "🍪", Order: 6}
	Condiments = model.Category{Name: "Oils & Condiments", Icon: "🫒", Order: 7}
	Seasonings = model.Category{Name: "Seasonings", Icon: "🧂", Order: 8}
	Frozen     = model.Category{Name: "Frozen", Icon: "🧊", Order: 9}
	Other      = model.Category{Name: "Other", Icon: "🛒", Order: 10}
)

// Categories returns every category in display order.
func Categories() []model.Category {
	return []model.Category{Produce, Meat, Dairy, Grains, Canned, Baking, Condiments, Seasonings, Frozen, Other}
}

// Categorize returns the grocery section for an ingredient name. Rules are
// evaluated in order and the first match wins, so narrow sections such as
// Seasonings come before broad ones: "garlic powder" must not land in
// Produce because of "garlic". Falls back to Other.
func Categorize(itemName string) model.Category {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return Other
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, r := range rules {
		if r.matches(name, words) {
			return r.category
		}
	}
	return Other
}

type matcher func(name string, words []string) bool

type rule struct {
	matches  matcher
	category model.Category
}

// keywords matches when the name contains any keyword as a substring.
func keywords(kw ...string) matcher {
	return func(name string, _ []string) bool {
		for _, k := range kw {
			if strings.Contains(name, k) {
				return true
			}
		}
		return false
	}
}

// wholeWords matches only complete words, for short keywords that hide
// inside longer ones ("egg" in "eggplant").
func wholeWords(ws ...string) matcher {
	return func(_ string, words []string) bool {
		for _, w := range words {
			for _, k := range ws {
				if w == k {
					return true
				}
			}
		}
		return false
	}
}

func anyOf(ms ...matcher) matcher {
	return func(name string, words []string) bool {
		for _, m := range ms {
			if m(name, words) {
				return true
			}
		}
		return false
	}
}

var rules = []rule{
	// Compound names whose parts would otherwise hit a broader rule below.
	{keywords("almond milk"), Dairy},
	{keywords("egg noodle"), Grains},
	{keywords("butter bean", "butter lettuce", "snap pea", "snow pea"), Produce},

	{anyOf(
		keywords(
			"garlic powder", "onion powder", "chili powder", "curry powder",
			"red pepper flakes", "black pepper", "white pepper", "peppercorn",
			"paprika", "cumin", "oregano", "cinnamon", "nutmeg", "turmeric",
			"cayenne", "allspice", "bay lea", "seasoning", "spice",
		),
		wholeWords("salt"),
	), Seasonings},

	{anyOf(
		keywords(
			"olive oil", "vegetable oil", "canola oil", "sesame oil", "coconut oil",
			"vinegar", "soy sauce", "fish sauce", "hot sauce", "worcestershire",
			"ketchup", "mustard", "mayonnaise", "sriracha", "honey", "syrup",
			"peanut butter", "salsa", "dressing", "tahini",
		),
		wholeWords("oil", "mayo", "jam", "jelly"),
	), Condiments},

	{keywords(
		"flour", "cornmeal", "sugar", "baking soda", "baking powder", "yeast", "cornstarch",
		"cocoa", "chocolate", "vanilla", "sprinkles", "chips", "cracker",
		"cookie", "pretzel", "popcorn", "nuts", "almond", "walnut", "pecan",
		"raisin", "granola",
	), Baking},

	{keywords(
		"canned", "jarred", "broth", "stock", "bouillon", "tomato paste",
		"tomato sauce", "coconut milk", "black beans", "kidney beans",
		"pinto beans", "cannellini", "refried beans", "baked beans",
		"chickpea", "lentil", "pickle", "olives", "capers", "soup",
	), Canned},

	{anyOf(
		keywords(
			"chicken", "beef", "pork", "turkey", "bacon", "sausage", "steak",
			"salmon", "shrimp", "prawn", "tuna", "fish", "crab", "lobster",
			"tilapia", "prosciutto", "pepperoni", "chorizo",
		),
		wholeWords("ham", "cod", "lamb", "mince"),
	), Meat},

	{anyOf(
		keywords(
			"milk", "cheese", "yogurt", "parmesan", "mozzarella", "cheddar",
			"feta", "ricotta", "ghee", "half and half", "half-and-half",
		),
		wholeWords("butter", "cream", "egg", "eggs"),
	), Dairy},

	{anyOf(
		keywords(
			"rice", "pasta", "spaghetti", "noodle", "macaroni", "penne",
			"lasagna", "bread", "tortilla", "oats", "oatmeal", "quinoa",
			"couscous", "bagel", "pita", "cereal", "barley",
		),
		wholeWords("bun", "buns", "roll", "rolls"),
	), Grains},

	{keywords("frozen", "popsicle"), Frozen},

	{anyOf(
		keywords(
			"apple", "banana", "orange", "lemon", "lime", "avocado", "tomato",
			"potato", "onion", "scallion", "shallot", "leek", "garlic",
			"lettuce", "spinach", "kale", "arugula", "broccoli", "cauliflower",
			"cabbage", "carrot", "celery", "cucumber", "pepper", "jalape",
			"mushroom", "corn", "berry", "berries", "grape", "melon",
			"pineapple", "mango", "peach", "pear", "cilantro", "basil",
			"parsley", "thyme", "rosemary", "ginger", "zucchini", "squash",
			"eggplant", "asparagus", "green bean", "beet", "radish", "herb",
			"fruit",
		),
		wholeWords("peas", "mint", "dill", "yam", "yams"),
	), Produce},
}

// GroupByCategory partitions items by category. Items within a group are
// sorted by display name; groups follow category display order, so Produce
// comes first and Other last.
func GroupByCategory(items []model.ConsolidatedItem) []model.CategoryGroup {
	byName := make(map[string]*model.CategoryGroup)
	var groups []*model.CategoryGroup
	for _, item := range items {
		g, ok := byName[item.Category.Name]
		if !ok {
			g = &model.CategoryGroup{Category: item.Category}
			byName[item.Category.Name] = g
			groups = append(groups, g)
		}
		g.Items = append(g.Items, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Category.Order != groups[j].Category.Order {
			return groups[i].Category.Order < groups[j].Category.Order
		}
		return groups[i].Category.Name < groups[j].Category.Name
	})

	out := make([]model.CategoryGroup, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Items, func(i, j int) bool {
			return strings.ToLower(g.Items[i].Name) < strings.ToLower(g.Items[j].Name)
		})
		out = append(out, *g)
	}
	return out
}
