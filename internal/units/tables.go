package units

import "sort"

// Count is the single canonical unit every count-style synonym collapses to.
const Count = "piece"

// Can is the container unit that gets shoppable rounding in FormatQuantity.
const Can = "can"

const mlPerCup = 236.588

var volumeToML = map[string]float64{
	"ml":     1,
	"cl":     10,
	"dl":     100,
	"l":      1000,
	"tsp":    4.92892,
	"tbsp":   14.7868,
	"fl oz":  29.5735,
	"cup":    mlPerCup,
	"pint":   473.176,
	"quart":  946.353,
	"gallon": 3785.41,
}

var weightToG = map[string]float64{
	"mg": 0.001,
	"g":  1,
	"kg": 1000,
	"oz": 28.3495,
	"lb": 453.592,
}

var countSynonyms = map[string]bool{
	"piece":   true,
	"pc":      true,
	"whole":   true,
	"unit":    true,
	"clove":   true,
	"item":    true,
	"each":    true,
	"ea":      true,
	"count":   true,
	"serving": true,
	"portion": true,
}

// Units with no conversion factor that still take part in plural handling.
var containerUnits = map[string]bool{
	"can":     true,
	"jar":     true,
	"bottle":  true,
	"box":     true,
	"bag":     true,
	"package": true,
	"bunch":   true,
	"head":    true,
	"loaf":    true,
	"leaf":    true,
	"slice":   true,
	"stick":   true,
	"sprig":   true,
	"pinch":   true,
	"dash":    true,
	"handful": true,
	"glass":   true,
}

var irregularPlurals = map[string]string{
	"cans":     "can",
	"boxes":    "box",
	"pinches":  "pinch",
	"dashes":   "dash",
	"bunches":  "bunch",
	"loaves":   "loaf",
	"leaves":   "leaf",
	"glasses":  "glass",
	"lbs":      "lb",
	"pcs":      "piece",
	"quarts":   "quart",
	"gallons":  "gallon",
	"pkgs":     "package",
	"packages": "package",
}

// Units that end in "s" on their own and must never lose it.
var naturalS = map[string]bool{
	"glass": true,
}

var aliases = map[string]string{
	"tablespoon":  "tbsp",
	"tbs":         "tbsp",
	"tbl":         "tbsp",
	"teaspoon":    "tsp",
	"ounce":       "oz",
	"pound":       "lb",
	"gram":        "g",
	"gr":          "g",
	"kilogram":    "kg",
	"kilo":        "kg",
	"milligram":   "mg",
	"milliliter":  "ml",
	"millilitre":  "ml",
	"liter":       "l",
	"litre":       "l",
	"deciliter":   "dl",
	"centiliter":  "cl",
	"fluid ounce": "fl oz",
	"floz":        "fl oz",
	"c":           "cup",
	"pt":          "pint",
	"qt":          "quart",
	"gal":         "gallon",
	"pkg":         "package",
}

type density struct {
	name       string
	gramsPerML float64
}

// Grams per milliliter, written as grams per US cup for readability.
var densityTable = sortedDensities([]density{
	{"all-purpose flour", 120 / mlPerCup},
	{"bread flour", 127 / mlPerCup},
	{"whole wheat flour", 113 / mlPerCup},
	{"flour", 120 / mlPerCup},
	{"powdered sugar", 120 / mlPerCup},
	{"brown sugar", 220 / mlPerCup},
	{"sugar", 200 / mlPerCup},
	{"butter", 227 / mlPerCup},
	{"peanut butter", 258 / mlPerCup},
	{"water", 236.6 / mlPerCup},
	{"milk", 245 / mlPerCup},
	{"heavy cream", 238 / mlPerCup},
	{"sour cream", 230 / mlPerCup},
	{"yogurt", 245 / mlPerCup},
	{"rice", 185 / mlPerCup},
	{"rolled oats", 90 / mlPerCup},
	{"oats", 90 / mlPerCup},
	{"honey", 340 / mlPerCup},
	{"maple syrup", 315 / mlPerCup},
	{"olive oil", 216 / mlPerCup},
	{"vegetable oil", 218 / mlPerCup},
	{"oil", 218 / mlPerCup},
	{"cocoa powder", 85 / mlPerCup},
	{"salt", 292 / mlPerCup},
	{"baking soda", 220 / mlPerCup},
	{"baking powder", 192 / mlPerCup},
	{"cornstarch", 128 / mlPerCup},
	{"cornmeal", 138 / mlPerCup},
	{"breadcrumbs", 108 / mlPerCup},
	{"chocolate chips", 170 / mlPerCup},
	{"parmesan", 100 / mlPerCup},
	{"cheddar", 113 / mlPerCup},
	{"chicken broth", 240 / mlPerCup},
	{"beef broth", 240 / mlPerCup},
	{"vegetable broth", 240 / mlPerCup},
	{"almonds", 143 / mlPerCup},
	{"walnuts", 120 / mlPerCup},
})

// sortedDensities orders entries longest name first so that substring
// lookups prefer "brown sugar" over "sugar".
func sortedDensities(in []density) []density {
	out := make([]density, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].name) != len(out[j].name) {
			return len(out[i].name) > len(out[j].name)
		}
		return out[i].name < out[j].name
	})
	return out
}
