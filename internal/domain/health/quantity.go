package health

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a measured value exactly as written in the dataset. Files carry
// both JSON numbers and numeric strings, so the literal text is kept for
// display and parsed on demand.
type Quantity struct {
	raw string
}

// NewQuantity builds a Quantity from its textual form.
func NewQuantity(s string) Quantity { return Quantity{raw: strings.TrimSpace(s)} }

func (q Quantity) String() string { return q.raw }

// IsZero reports whether the value was absent.
func (q Quantity) IsZero() bool { return q.raw == "" }

// Float parses the value. ok is false for absent or non-numeric values.
func (q Quantity) Float() (float64, bool) {
	if q.raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(q.raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*q = Quantity{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
		*q = NewQuantity(text)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Quantity{raw: n.String()}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.raw == "" {
		return []byte("null"), nil
	}
	if _, ok := q.Float(); ok && json.Valid([]byte(q.raw)) {
		return []byte(q.raw), nil
	}
	return json.Marshal(q.raw)
}
