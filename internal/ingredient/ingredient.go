// Package ingredient resolves free-text ingredient names: it strips amounts,
// units and preparation words, and decides when two names mean the same
// ingredient.
package ingredient

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unitWords = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"oz": true, "ounce": true, "ounces": true,
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"g": true, "gram": true, "grams": true, "kg": true,
	"ml": true, "l": true, "liter": true, "liters": true,
	"pint": true, "pints": true, "quart": true, "quarts": true,
	"can": true, "cans": true, "jar": true, "jars": true,
	"clove": true, "cloves": true, "pinch": true, "dash": true,
	"slice": true, "slices": true, "piece": true, "pieces": true,
	"bunch": true, "head": true, "heads": true, "stick": true, "sticks": true,
	"package": true, "packages": true, "pkg": true,
	"bag": true, "bags": true, "sprig": true, "sprigs": true, "handful": true,
}

var descriptors = map[string]bool{
	"fresh":    true,
	"frozen":   true,
	"dried":    true,
	"canned":   true,
	"cooked":   true,
	"raw":      true,
	"organic":  true,
	"chopped":  true,
	"diced":    true,
	"minced":   true,
	"sliced":   true,
	"shredded": true,
	"grated":   true,
	"peeled":   true,
	"trimmed":  true,
	"boneless": true,
	"skinless": true,
}

var punctuation = strings.NewReplacer(",", " ", "(", " ", ")", " ", ";", " ")

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isAmount(tok string) bool {
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '/', r == '-':
		case strings.ContainsRune("½⅓⅔¼¾⅕⅛⅜⅝⅞", r):
		default:
			return false
		}
	}
	return tok != ""
}

// Normalize reduces a free-text ingredient line to a bare ingredient name:
// "2 cups Fresh Chopped Spinach" becomes "spinach".
func Normalize(raw string) string {
	s := foldDiacritics(strings.ToLower(strings.TrimSpace(raw)))
	words := strings.Fields(punctuation.Replace(s))

	for len(words) > 0 && isAmount(words[0]) {
		words = words[1:]
	}
	if len(words) > 1 && unitWords[words[0]] {
		words = words[1:]
		if len(words) > 1 && words[0] == "of" {
			words = words[1:]
		}
	}

	kept := words[:0]
	for _, w := range words {
		if !descriptors[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// NamesMatch reports whether two ingredient names denote the same thing for
// pantry matching. Names match when their normalized forms are equal, when
// either is a synonym key listing the other, or when both are keys sharing a
// variant. The result is symmetric even though the table is not.
func NamesMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	va, vb := variantsOf(na), variantsOf(nb)
	if contains(va, nb) || contains(vb, na) {
		return true
	}
	for _, v := range va {
		if contains(vb, v) {
			return true
		}
	}
	return false
}

// CanonicalName picks the grouping name for an already normalized name: the
// name itself if it is a synonym key, else the first key listing it, else the
// name unchanged. It is used for merging shopping-list entries only; pantry
// matching goes through NamesMatch.
func CanonicalName(normalized string) string {
	if _, ok := synonymIndex[normalized]; ok {
		return normalized
	}
	for _, e := range synonymTable {
		if contains(e.variants, normalized) {
			return e.canonical
		}
	}
	return normalized
}

// Variants returns a copy of the variant list for a canonical name.
func Variants(canonical string) []string {
	v := variantsOf(canonical)
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
