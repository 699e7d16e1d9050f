package health

import "encoding/json"

// Biomarker names as they appear in a blood test's results table.
const (
	TestGlucose          = "glucose"
	TestHbA1c            = "hba1c"
	TestCholesterolTotal = "cholesterolTotal"
	TestCholesterolLDL   = "cholesterolLDL"
	TestCholesterolHDL   = "cholesterolHDL"
	TestTriglycerides    = "triglycerides"
	TestVitaminD         = "vitaminD"
	TestVitaminB12       = "vitaminB12"
	TestIron             = "iron"
	TestFerritin         = "ferritin"
	TestCalcium          = "calcium"
	TestMagnesium        = "magnesium"
)

// TestResult is a single biomarker measurement.
type TestResult struct {
	Value       Quantity `json:"value"`
	Unit        string   `json:"unit"`
	NormalRange string   `json:"normalRange"`
	Status      Status   `json:"status"`
}

// BloodTestRecord is one lab panel.
type BloodTestRecord struct {
	Date    string  `json:"date"`
	Results Results `json:"results"`
}

// BloodPressure reading in mmHg.
type BloodPressure struct {
	Systolic  Quantity `json:"systolic"`
	Diastolic Quantity `json:"diastolic"`
	Status    Status   `json:"status"`
}

// Measurement is a single-valued vital sign.
type Measurement struct {
	Value  Quantity `json:"value"`
	Unit   string   `json:"unit"`
	Status Status   `json:"status"`
}

// VitalsRecord is one set of vital signs. Sub-readings that were not taken
// are nil.
type VitalsRecord struct {
	Date             string         `json:"date"`
	BloodPressure    *BloodPressure `json:"bloodPressure,omitempty"`
	HeartRate        *Measurement   `json:"heartRate,omitempty"`
	OxygenSaturation *Measurement   `json:"oxygenSaturation,omitempty"`
	Temperature      *Measurement   `json:"temperature,omitempty"`
}

// SleepRecord is one night of sleep.
type SleepRecord struct {
	Date           string  `json:"date,omitempty"`
	TotalHours     float64 `json:"totalHours"`
	DeepSleepHours float64 `json:"deepSleepHours"`
	RemSleepHours  float64 `json:"remSleepHours"`
}

// HealthMetrics holds the wearable-derived series.
type HealthMetrics struct {
	SleepData []SleepRecord `json:"sleepData"`
}

// Dataset is the whole personal health record. Sequences are ordered
// most-recent-first; a missing sequence is empty.
type Dataset struct {
	User           json.RawMessage   `json:"user,omitempty"`
	BloodTests     []BloodTestRecord `json:"bloodTests"`
	Vitals         []VitalsRecord    `json:"vitals"`
	MedicalHistory json.RawMessage   `json:"medicalHistory,omitempty"`
	HealthMetrics  HealthMetrics     `json:"healthMetrics"`
}

// LatestBloodTest returns the first blood test, or nil when there is none.
func (d *Dataset) LatestBloodTest() *BloodTestRecord {
	if d == nil || len(d.BloodTests) == 0 {
		return nil
	}
	return &d.BloodTests[0]
}

// LatestVitals returns the first vitals record, or nil when there is none.
func (d *Dataset) LatestVitals() *VitalsRecord {
	if d == nil || len(d.Vitals) == 0 {
		return nil
	}
	return &d.Vitals[0]
}

// Sleep returns every recorded night.
func (d *Dataset) Sleep() []SleepRecord {
	if d == nil {
		return nil
	}
	return d.HealthMetrics.SleepData
}

// AverageSleepHours returns the mean total sleep and false when no nights
// are recorded.
func AverageSleepHours(days []SleepRecord) (float64, bool) {
	if len(days) == 0 {
		return 0, false
	}
	var sum float64
	for _, d := range days {
		sum += d.TotalHours
	}
	return sum / float64(len(days)), true
}
