package domain

// ConfidenceLevels maps each named uncertainty band to its symmetric spread
// fraction: a price ladder spans base × (1 ± spread).
var ConfidenceLevels = map[string]float64{
	"Certain":   0.01,
	"Confident": 0.10,
	"Likely":    0.15,
	"Possible":  0.25,
	"No Idea":   0.50,
}

// SpreadFor returns the spread fraction for a confidence label.
func SpreadFor(label string) (float64, bool) {
	spread, ok := ConfidenceLevels[label]
	return spread, ok
}
