package analysis

import (
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

var vitaminPanel = []string{
	health.TestVitaminD,
	health.TestVitaminB12,
	health.TestIron,
	health.TestFerritin,
	health.TestCalcium,
	health.TestMagnesium,
}

// Vitamins reports vitamin and mineral results of the latest blood test.
func Vitamins(tests []health.BloodTestRecord) string {
	if len(tests) == 0 {
		return NoBloodTestData
	}
	latest := tests[0]

	var b strings.Builder
	b.WriteString(header("Vitamin and Mineral Analysis", latest.Date))

	found := 0
	for _, name := range vitaminPanel {
		r, ok := latest.Results.Get(name)
		if !ok {
			continue
		}
		found++
		writeResult(&b, labels[name], r, Advisory(name, r.Status))
	}
	if found == 0 {
		b.WriteString("No vitamin or mineral results were found in your latest blood test.")
		return b.String()
	}
	return strings.TrimRight(b.String(), "\n")
}
