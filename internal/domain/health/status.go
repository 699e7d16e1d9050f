package health

// Status is the classification already attached to every biomarker and vital
// sign in the dataset. It is read and branched on, never computed here.
type Status string

const (
	StatusNormal       Status = "normal"
	StatusElevated     Status = "elevated"
	StatusLow          Status = "low"
	StatusDeficient    Status = "deficient"
	StatusInsufficient Status = "insufficient"
	StatusOptimal      Status = "optimal"
	StatusUnknown      Status = "unknown"
)

// String returns "unknown" for a status that was absent from the record.
func (s Status) String() string {
	if s == "" {
		return string(StatusUnknown)
	}
	return string(s)
}

// InRange reports whether the value sits inside its reference range.
func (s Status) InRange() bool {
	return s == StatusNormal || s == StatusOptimal
}

// Flagged reports whether the result should be surfaced as outside its range.
// Unrecognised status strings are flagged too; an absent status is not.
func (s Status) Flagged() bool {
	if s == "" || s == StatusUnknown {
		return false
	}
	return !s.InRange()
}
