package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in currency units. It is parsed exactly once, at
// the JSON boundary, and is a real number from then on, so aggregation can
// never be poisoned by a non-numeric amount. Form clients tend to submit
// amounts as strings ("1500" instead of 1500), so both encodings are accepted.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}
