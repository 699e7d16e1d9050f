package analysis

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const (
	glucoseDiabetesThreshold = 126.0 // mg/dL
	hba1cDiabetesThreshold   = 6.5   // %
	mmolToMgdL               = 18.0182
)

// Glucose reports glucose and HbA1c from the latest blood test.
func Glucose(tests []health.BloodTestRecord) string {
	if len(tests) == 0 {
		return NoBloodTestData
	}
	latest := tests[0]

	var b strings.Builder
	b.WriteString(header("Blood Sugar Analysis", latest.Date))

	found := false
	if r, ok := latest.Results.Get(health.TestGlucose); ok {
		found = true
		writeResult(&b, labels[health.TestGlucose], r, glucoseAdvisory(r))
	}
	if r, ok := latest.Results.Get(health.TestHbA1c); ok {
		found = true
		writeResult(&b, labels[health.TestHbA1c], r, hba1cAdvisory(r))
	}
	if !found {
		b.WriteString("No glucose or HbA1c results were found in your latest blood test.")
		return b.String()
	}
	return strings.TrimRight(b.String(), "\n")
}

func glucoseAdvisory(r health.TestResult) string {
	if r.Status != health.StatusElevated {
		return Advisory(health.TestGlucose, r.Status)
	}
	v, ok := r.Value.Float()
	if !ok {
		return Advisory(health.TestGlucose, r.Status)
	}
	if strings.EqualFold(strings.TrimSpace(r.Unit), "mmol/L") {
		v *= mmolToMgdL
	}
	shown := withUnit(r.Value, r.Unit)
	if v < glucoseDiabetesThreshold {
		return fmt.Sprintf("Your glucose of %s is in the prediabetes range (100-125 mg/dL fasting). "+
			"This can often be reversed with lifestyle changes: limit refined carbohydrates and added "+
			"sugars, stay active most days, and aim for a healthy weight. Ask your doctor about "+
			"repeating the test.", shown)
	}
	return fmt.Sprintf("Your glucose of %s is in the diabetes range (126 mg/dL or higher fasting). "+
		"A single reading is not a diagnosis, but it should be confirmed. Please contact your doctor "+
		"soon about follow-up testing such as a repeat fasting glucose or HbA1c.", shown)
}

func hba1cAdvisory(r health.TestResult) string {
	if r.Status != health.StatusElevated {
		return Advisory(health.TestHbA1c, r.Status)
	}
	v, ok := r.Value.Float()
	if !ok {
		return Advisory(health.TestHbA1c, r.Status)
	}
	shown := withUnit(r.Value, r.Unit)
	if v < hba1cDiabetesThreshold {
		return fmt.Sprintf("Your HbA1c of %s is in the prediabetes range (5.7-6.4%%). Your average "+
			"blood sugar over the last few months has been higher than ideal; diet, exercise and "+
			"weight management can bring it down.", shown)
	}
	return fmt.Sprintf("Your HbA1c of %s is in the diabetes range (6.5%% or higher). Please talk to "+
		"your doctor about confirming the result and starting a management plan.", shown)
}
