package analysis

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const (
	NoBloodTestData = "No blood test data available for analysis."
	NoVitalsData    = "No vital sign data available for analysis."
	NoSleepData     = "No sleep data available for analysis."
)

// panelInsights lists the biomarkers whose advisories the general panel
// appends, in the order they are checked.
var panelInsights = []string{
	health.TestGlucose,
	health.TestHbA1c,
	health.TestCholesterolTotal,
	health.TestCholesterolLDL,
	health.TestCholesterolHDL,
	health.TestTriglycerides,
	health.TestVitaminD,
	health.TestVitaminB12,
	health.TestIron,
	health.TestFerritin,
	health.TestCalcium,
	health.TestMagnesium,
}

// BloodPanel summarises every out-of-range result of the latest blood test.
func BloodPanel(tests []health.BloodTestRecord) string {
	if len(tests) == 0 {
		return NoBloodTestData
	}
	latest := tests[0]

	var flagged []health.NamedResult
	for _, e := range latest.Results.Entries() {
		if e.Result.Status.Flagged() {
			flagged = append(flagged, e)
		}
	}

	var b strings.Builder
	b.WriteString(header("Blood Test Analysis", latest.Date))

	if len(flagged) == 0 {
		b.WriteString("All test results are within normal ranges. Your blood work looks healthy!")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d test result(s) outside normal ranges:\n\n", len(flagged))
	for _, e := range flagged {
		b.WriteString("- ")
		b.WriteString(resultLine(e.Name, e.Result))
		b.WriteString("\n")
	}

	for _, e := range flagged {
		if !knownInsight(e.Name) {
			continue
		}
		if text := Advisory(e.Name, e.Result.Status); text != "" {
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func knownInsight(name string) bool {
	for _, n := range panelInsights {
		if n == name {
			return true
		}
	}
	return false
}

// Overview combines the blood panel and vitals reports.
func Overview(ds *health.Dataset) string {
	var tests []health.BloodTestRecord
	var vitals []health.VitalsRecord
	if ds != nil {
		tests, vitals = ds.BloodTests, ds.Vitals
	}
	return fmt.Sprintf("Health Overview:\n\n%s\n\n%s", BloodPanel(tests), Vitals(vitals))
}
