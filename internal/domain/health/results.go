package health

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NamedResult pairs a biomarker name with its result.
type NamedResult struct {
	Name   string
	Result TestResult
}

// Results is the biomarker table of one blood test. It keeps the key order of
// the source document so that rendered reports list results in file order.
type Results struct {
	names  []string
	byName map[string]TestResult
}

// NewResults builds a table in the given order. A repeated name keeps its
// first position and its last value.
func NewResults(entries ...NamedResult) Results {
	var r Results
	for _, e := range entries {
		r.set(e.Name, e.Result)
	}
	return r
}

func (r *Results) set(name string, res TestResult) {
	if r.byName == nil {
		r.byName = make(map[string]TestResult)
	}
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = res
}

// Len returns the number of biomarkers.
func (r Results) Len() int { return len(r.names) }

// Get returns the result for a biomarker.
func (r Results) Get(name string) (TestResult, bool) {
	res, ok := r.byName[name]
	return res, ok
}

// Entries returns the results in document order.
func (r Results) Entries() []NamedResult {
	out := make([]NamedResult, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, NamedResult{Name: n, Result: r.byName[n]})
	}
	return out
}

func (r *Results) UnmarshalJSON(b []byte) error {
	*r = Results{}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("results: %w", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("results: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("results: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("results: unexpected key %v", tok)
		}
		var res TestResult
		if err := dec.Decode(&res); err != nil {
			return fmt.Errorf("results: %s: %w", name, err)
		}
		r.set(name, res)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("results: %w", err)
	}
	return nil
}

func (r Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.byName[n])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
