package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Number is a float64 that unmarshals from either a JSON number or a numeric
// string, and remembers whether the field was present. The calculator UI
// historically submitted slider values as strings.
type Number struct {
	value   float64
	present bool
}

// NumberOf wraps a float64 as a present Number. Used by tests and the CLI.
func NumberOf(v float64) Number {
	return Number{value: v, present: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid numeric value %s", string(data))
	}
	n.value = v
	n.present = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.present {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

// Float64 returns the parsed value, 0 when the field was absent.
func (n Number) Float64() float64 {
	return n.value
}

// IsSet reports whether the field appeared in the request body.
func (n Number) IsSet() bool {
	return n.present
}
