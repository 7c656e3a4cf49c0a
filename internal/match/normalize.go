package match

import (
	"fmt"
	"math"
	"strings"
)

// Category is the four-way classification derived from a raw status string.
type Category string

const (
	Success Category = "success"
	Warning Category = "warning"
	Danger  Category = "danger"
	Neutral Category = "neutral"
)

// Placeholder is rendered for absent or empty display values.
const Placeholder = "—"

// Classify maps a free-text backend verdict to a Category. The backend has no
// closed vocabulary, so matching is by uppercased substring, first match wins.
// The precedence (ATENDE before NAO before DUVID/PARC/DEPEN) is load-bearing:
// a compound verdict like "NAO ATENDE" classifies as Success because ATENDE
// is checked first, and changing the order would change live behavior.
func Classify(raw string) Category {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "ATENDE") || s == "SIM":
		return Success
	case strings.Contains(s, "NAO") || strings.Contains(s, "NÃO"):
		return Danger
	case strings.Contains(s, "DUVID") || strings.Contains(s, "PARC") || strings.Contains(s, "DEPEN"):
		return Warning
	default:
		return Neutral
	}
}

// ConfidencePercent formats a confidence value in [0,1] as a whole percentage.
// Non-finite input renders as the placeholder; out-of-range values are not
// clamped.
func ConfidencePercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// StatusLabel returns the raw status text for display, or the placeholder
// when it is empty.
func StatusLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Placeholder
	}
	return s
}
