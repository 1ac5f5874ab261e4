package model

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/dukerupert/mealcart/internal/units"
)

// Quantity is an amount of something in a free-text unit. Units are only
// comparable after units.Normalize.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Amount is a lenient numeric field for external input. It accepts JSON and
// YAML numbers as well as strings such as "2", "1/2" or "1 ½". Anything it
// cannot read becomes 0, and negative values clamp to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}
	*a = amountFrom(v)
	return nil
}

// UnmarshalYAML implements the goccy/go-yaml interface unmarshaler.
func (a *Amount) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		*a = 0
		return nil
	}
	*a = amountFrom(v)
	return nil
}

func amountFrom(v any) Amount {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		f = units.ParseValue(strings.TrimSpace(n))
	default:
		return 0
	}
	return Amount(NonNegative(f))
}

// NonNegative clamps v to zero when it is negative or not a number.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
