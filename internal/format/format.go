// Package format renders raw market magnitudes in the Indian display
// convention (crore/lakh units, rupee glyph).
package format

import (
	"fmt"
	"math"
	"strconv"
)

const (
	crore    = 1e7
	lakh     = 1e5
	thousand = 1e3
)

// MarketCap formats a market capitalisation for display. A nil or NaN
// value yields nil so the field can be omitted from responses.
func MarketCap(value *float64) *string {
	if value == nil || math.IsNaN(*value) {
		return nil
	}

	v := *value
	var s string
	switch {
	case v >= 1e12:
		s = fmt.Sprintf("₹%.1fT", v/1e12)
	case v >= 1e10:
		s = fmt.Sprintf("₹%.1fB", v/1e10)
	case v >= crore:
		s = fmt.Sprintf("₹%.1fCr", v/crore)
	default:
		s = fmt.Sprintf("₹%.0f", v)
	}
	return &s
}

// Volume formats a traded volume for display. A nil or NaN value yields
// "0".
func Volume(value *float64) string {
	if value == nil || math.IsNaN(*value) {
		return "0"
	}

	v := *value
	switch {
	case v >= crore:
		return fmt.Sprintf("%.1fCr", v/crore)
	case v >= lakh:
		return fmt.Sprintf("%.1fL", v/lakh)
	case v >= thousand:
		return fmt.Sprintf("%.1fK", v/thousand)
	default:
		return strconv.Itoa(int(v))
	}
}
