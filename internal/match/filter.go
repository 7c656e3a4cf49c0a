package match

import (
	"math"
	"strings"
)

// Filter narrows the items shown in the on-screen requirement tables. It is
// display-only: exports always operate on the unfiltered row set.
type Filter struct {
	// Status keeps only items of the given category; empty keeps all.
	Status Category
	// MinConfidence drops items below the threshold; non-finite confidence
	// counts as zero.
	MinConfidence float64
	// Text keeps items whose requisito or evidence contains the query,
	// case-insensitively.
	Text string
}

// Apply returns the items that pass the filter, preserving order. The input is
// not mutated.
func (f Filter) Apply(items []MatchItem) []MatchItem {
	query := strings.ToLower(strings.TrimSpace(f.Text))
	var out []MatchItem
	for _, it := range items {
		if f.Status != "" && Classify(it.Status) != f.Status {
			continue
		}
		conf := it.Confidence.Float()
		if math.IsNaN(conf) || math.IsInf(conf, 0) {
			conf = 0
		}
		if conf < f.MinConfidence {
			continue
		}
		if query != "" {
			req := strings.ToLower(it.Requisito)
			evidence := strings.ToLower(strings.Join(it.Evidence.Values(), " "))
			if !strings.Contains(req, query) && !strings.Contains(evidence, query) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}
