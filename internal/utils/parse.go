// internal/utils/parse.go
package utils

import "strconv"

// Form fields arrive as strings; these helpers fall back to a default
// instead of failing so a half-filled form never breaks a draft.

func ParseFloatOrDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func ParseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
