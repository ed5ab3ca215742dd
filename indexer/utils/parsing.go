package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// sizeUnits maps a two letter unit suffix to its power of 1024.
var sizeUnits = map[string]float64{
	"KB": 1,
	"MB": 2,
	"GB": 3,
	"TB": 4,
}

// ParseSize converts a size like "1.46 GB" to bytes.
// It returns -1 if the value can't be parsed.
func ParseSize(text string) int64 {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return -1
	}
	unit := strings.ToUpper(text[len(text)-2:])
	power, ok := sizeUnits[unit]
	if !ok {
		return -1
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text[:len(text)-2]), 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return -1
	}
	bytes := value * math.Pow(1024, power)
	if bytes >= math.MaxInt64 {
		return -1
	}
	return int64(bytes)
}

// NormalizeNumber removes thousand separators. An empty value is treated as 0.
func NormalizeNumber(s string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	if normalized == "" {
		normalized = "0"
	}

	return normalized
}

// TryInt parses a counter cell, returning fallback if it's not a number.
func TryInt(s string, fallback int) int {
	v, err := strconv.Atoi(NormalizeNumber(s))
	if err != nil {
		return fallback
	}
	return v
}

func NormalizeSpace(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s))
}
