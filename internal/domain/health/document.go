package health

import (
	"encoding/json"
	"fmt"
)

// Top-level sections of the dataset document.
const (
	SectionUser           = "user"
	SectionBloodTests     = "bloodTests"
	SectionVitals         = "vitals"
	SectionMedicalHistory = "medicalHistory"
	SectionHealthMetrics  = "healthMetrics"
)

// Document is a loaded dataset: the typed view used by the analyzers plus
// the raw sections served as-is by the read API.
type Document struct {
	Dataset  Dataset
	sections map[string]json.RawMessage
}

// ParseDocument decodes a dataset file.
func ParseDocument(b []byte) (*Document, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(b, &sections); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	if sections == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedDataset)
	}
	var ds Dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	return &Document{Dataset: ds, sections: sections}, nil
}

// Section returns one top-level section verbatim.
func (d *Document) Section(name string) (json.RawMessage, error) {
	s, ok := d.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionMissing, name)
	}
	return s, nil
}
