package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingIntRe   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	currencyNoise  = regexp.MustCompile(`[R$\s.]`)
)

// CellInt integer extraction for leads and day columns.
// Order: numeric value, then display text, then the raw value, else 0.
func CellInt(c Cell) int {
	if c.Empty {
		return 0
	}
	if c.IsNumber {
		return truncInt(c.Number)
	}
	if c.Text != "" {
		return parseLeadingInt(c.Text)
	}
	if c.Raw != "" {
		return parseLeadingInt(c.Raw)
	}
	return 0
}

// CellCurrency amount extraction for payment columns.
// Display text like "R$ 1.234,56" becomes 1234.56.
func CellCurrency(c Cell) float64 {
	if c.Empty {
		return 0
	}
	if c.IsNumber {
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return 0
		}
		return c.Number
	}
	if c.Text == "" {
		return 0
	}
	return ParseCurrency(c.Text)
}

// CellString trimmed display text
func CellString(c Cell) string {
	return strings.TrimSpace(c.Text)
}

// ParseCurrency strips the currency symbol, spaces and thousands dots, then reads a decimal comma.
func ParseCurrency(s string) float64 {
	cleaned := currencyNoise.ReplaceAllString(s, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	return parseLeadingFloat(strings.TrimSpace(cleaned))
}

func parseLeadingInt(s string) int {
	m := leadingIntRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	i, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return i
}

func parseLeadingFloat(s string) float64 {
	m := leadingFloatRe.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func truncInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}
