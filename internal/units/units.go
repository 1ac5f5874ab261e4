// Package units normalizes free-text measurement units and converts
// quantities between compatible units.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrIncompatibleUnits = errors.New("incompatible units")
	ErrNoDensity         = errors.New("no density for ingredient")
)

// Kind is the measurement family of a normalized unit.
type Kind int

const (
	KindUnknown Kind = iota
	KindCount
	KindVolume
	KindWeight
)

func (k Kind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindVolume:
		return "volume"
	case KindWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Normalize reduces a unit spelling to its canonical singular form. One
// trailing "s" is dropped unless the unit is a known spelling, ends in "ss",
// or ends in "s" naturally. Count synonyms ("whole", "clove", "each", ...) all become Count. Applying it
// twice gives the same result as applying it once.
func Normalize(raw string) string {
	u := strings.ToLower(raw)
	u = strings.ReplaceAll(u, ".", " ")
	u = strings.Join(strings.Fields(u), " ")
	if u == "" {
		return ""
	}

	if singular, ok := irregularPlurals[u]; ok {
		u = singular
	} else if strings.HasSuffix(u, "s") && !strings.HasSuffix(u, "ss") && len(u) > 1 &&
		!naturalS[u] && !isKnown(u) {
		u = u[:len(u)-1]
	}

	if canonical, ok := aliases[u]; ok {
		u = canonical
	}
	if countSynonyms[u] {
		return Count
	}
	return u
}

func isKnown(u string) bool {
	if u == "" {
		return false
	}
	if _, ok := volumeToML[u]; ok {
		return true
	}
	if _, ok := weightToG[u]; ok {
		return true
	}
	if _, ok := aliases[u]; ok {
		return true
	}
	return countSynonyms[u] || containerUnits[u]
}

// Classify reports the measurement family of a unit. The empty unit counts
// as Count; anything outside the fixed tables is KindUnknown.
func Classify(unit string) Kind {
	u := Normalize(unit)
	if u == "" || u == Count {
		return KindCount
	}
	if _, ok := volumeToML[u]; ok {
		return KindVolume
	}
	if _, ok := weightToG[u]; ok {
		return KindWeight
	}
	return KindUnknown
}

// Convert expresses value in from-units as to-units. Volume and weight only
// bridge through the ingredient's density; count never converts to volume or
// weight. Failures are reported as errors wrapping ErrUnknownUnit,
// ErrIncompatibleUnits or ErrNoDensity.
func Convert(value float64, from, to, ingredient string) (float64, error) {
	f, t := Normalize(from), Normalize(to)
	if f == t {
		return value, nil
	}

	fk, tk := Classify(f), Classify(t)
	switch {
	case fk == KindUnknown || tk == KindUnknown:
		return 0, fmt.Errorf("convert %q to %q: %w", from, to, ErrUnknownUnit)
	case fk == KindVolume && tk == KindVolume:
		return value * volumeToML[f] / volumeToML[t], nil
	case fk == KindWeight && tk == KindWeight:
		return value * weightToG[f] / weightToG[t], nil
	case fk == KindCount && tk == KindCount:
		return value, nil
	case fk == KindCount || tk == KindCount:
		return 0, fmt.Errorf("convert %q to %q: %w", from, to, ErrIncompatibleUnits)
	}

	d, ok := Density(ingredient)
	if !ok {
		return 0, fmt.Errorf("convert %q to %q for %q: %w", from, to, ingredient, ErrNoDensity)
	}
	if fk == KindVolume {
		grams := value * volumeToML[f] * d
		return grams / weightToG[t], nil
	}
	ml := value * weightToG[f] / d
	return ml / volumeToML[t], nil
}

// Density returns grams per milliliter for an ingredient: exact name first,
// then substring containment in either direction, longest table name first.
func Density(ingredient string) (float64, bool) {
	name := strings.Join(strings.Fields(strings.ToLower(ingredient)), " ")
	if name == "" {
		return 0, false
	}
	for _, d := range densityTable {
		if d.name == name {
			return d.gramsPerML, true
		}
	}
	for _, d := range densityTable {
		if strings.Contains(name, d.name) {
			return d.gramsPerML, true
		}
		// Very short names would match half the table.
		if len(name) >= 3 && strings.Contains(d.name, name) {
			return d.gramsPerML, true
		}
	}
	return 0, false
}

const minCans = 0.1

// FormatQuantity rounds a value for display. Cans get shoppable steps:
// never less than a tenth, tenths below one, quarters from one up. Every
// other unit rounds to two decimals.
func FormatQuantity(value float64, unit string) float64 {
	if Normalize(unit) == Can {
		switch {
		case value <= 0:
			return 0
		case value < minCans:
			return minCans
		case value < 1:
			return math.Round(value*10) / 10
		default:
			return math.Round(value*4) / 4
		}
	}
	return Round2(value)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Display renders a formatted quantity without trailing zeros, e.g.
// "1.5 cup" or "2 piece". An empty unit renders the number alone.
func Display(value float64, unit string) string {
	n := humanize.FtoaWithDigits(FormatQuantity(value, unit), 2)
	u := Normalize(unit)
	if u == "" {
		return n
	}
	return n + " " + u
}
