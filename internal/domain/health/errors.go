package health

import "errors"

var (
	// ErrDatasetUnavailable indicates the dataset could not be read from its source.
	ErrDatasetUnavailable = errors.New("health dataset unavailable")
	// ErrMalformedDataset indicates the dataset was read but does not match the schema.
	ErrMalformedDataset = errors.New("health dataset malformed")
	// ErrSectionMissing indicates a top-level section is absent from the dataset.
	ErrSectionMissing = errors.New("health dataset section missing")
)
