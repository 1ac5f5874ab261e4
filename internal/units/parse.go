package units

import (
	"math"
	"strconv"
	"strings"
)

var vulgarFractions = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅕': "1/5",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}

// ParseValue reads a recipe-style amount: "2", "1.5", "1/2", "1 1/2", "1½".
// Anything it cannot read, and any negative result, is 0.
func ParseValue(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if frac, ok := vulgarFractions[r]; ok {
			b.WriteString(" " + frac)
			continue
		}
		b.WriteRune(r)
	}

	fields := strings.Fields(b.String())
	if len(fields) == 0 || len(fields) > 2 {
		return 0
	}

	var total float64
	for _, f := range fields {
		v, ok := parseToken(f)
		if !ok {
			return 0
		}
		total += v
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0
	}
	return total
}

func parseToken(tok string) (float64, bool) {
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
