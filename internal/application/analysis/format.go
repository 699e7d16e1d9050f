package analysis

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// labels used by the focused analyzers. The general blood panel prints raw names.
var labels = map[string]string{
	health.TestGlucose:          "Glucose",
	health.TestHbA1c:            "HbA1c",
	health.TestCholesterolTotal: "Total Cholesterol",
	health.TestCholesterolLDL:   "LDL Cholesterol",
	health.TestCholesterolHDL:   "HDL Cholesterol",
	health.TestTriglycerides:    "Triglycerides",
	health.TestVitaminD:         "Vitamin D",
	health.TestVitaminB12:       "Vitamin B12",
	health.TestIron:             "Iron",
	health.TestFerritin:         "Ferritin",
	health.TestCalcium:          "Calcium",
	health.TestMagnesium:        "Magnesium",
}

func withUnit(v health.Quantity, unit string) string {
	return strings.TrimSpace(v.String() + " " + unit)
}

func resultLine(label string, r health.TestResult) string {
	if r.NormalRange == "" {
		return fmt.Sprintf("%s: %s (Status: %s)", label, withUnit(r.Value, r.Unit), r.Status)
	}
	return fmt.Sprintf("%s: %s (Normal range: %s, Status: %s)", label, withUnit(r.Value, r.Unit), r.NormalRange, r.Status)
}

// writeResult prints a result line and, when one is defined, its advisory.
func writeResult(b *strings.Builder, label string, r health.TestResult, advisory string) {
	b.WriteString(resultLine(label, r))
	b.WriteString("\n")
	if advisory != "" {
		b.WriteString(advisory)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func header(title, date string) string {
	if date == "" {
		return title + ":\n\n"
	}
	return fmt.Sprintf("%s (from %s):\n\n", title, date)
}
