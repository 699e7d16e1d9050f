package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// RatioTier classifies the total/HDL cholesterol ratio.
type RatioTier string

const (
	RatioOptimal      RatioTier = "optimal"
	RatioAcceptable   RatioTier = "acceptable"
	RatioElevatedRisk RatioTier = "elevated risk"
)

var ratioAdvice = map[RatioTier]string{
	RatioOptimal: "Your total/HDL cholesterol ratio is in the optimal range (3.5 or below), " +
		"which is associated with a lower risk of heart disease.",
	RatioAcceptable: "Your total/HDL cholesterol ratio is acceptable (between 3.5 and 5.0). " +
		"Raising HDL and lowering LDL can move it into the optimal range.",
	RatioElevatedRisk: "Your total/HDL cholesterol ratio is 5.0 or higher, which is associated with " +
		"increased cardiovascular risk. Discuss lipid management with your doctor.",
}

var cholesterolPanel = []string{
	health.TestCholesterolTotal,
	health.TestCholesterolLDL,
	health.TestCholesterolHDL,
	health.TestTriglycerides,
}

// CholesterolRatio returns total/HDL rounded to one decimal and its tier.
// The optimal cutoff is compared at display precision so a ratio shown as
// 3.5 is optimal; the elevated cutoff uses the unrounded ratio.
// ok is false when HDL is zero.
func CholesterolRatio(total, hdl float64) (ratio float64, tier RatioTier, ok bool) {
	if hdl == 0 {
		return 0, "", false
	}
	raw := total / hdl
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, "", false
	}
	ratio = math.Round(raw*10) / 10
	switch {
	case ratio <= 3.5:
		tier = RatioOptimal
	case raw < 5.0:
		tier = RatioAcceptable
	default:
		tier = RatioElevatedRisk
	}
	return ratio, tier, true
}

// Cholesterol reports the lipid panel of the latest blood test.
func Cholesterol(tests []health.BloodTestRecord) string {
	if len(tests) == 0 {
		return NoBloodTestData
	}
	latest := tests[0]

	var b strings.Builder
	b.WriteString(header("Cholesterol Analysis", latest.Date))

	found := 0
	for _, name := range cholesterolPanel {
		r, ok := latest.Results.Get(name)
		if !ok {
			continue
		}
		found++
		writeResult(&b, labels[name], r, Advisory(name, r.Status))
	}
	if found == 0 {
		b.WriteString("No cholesterol results were found in your latest blood test.")
		return b.String()
	}

	total, okTotal := latest.Results.Get(health.TestCholesterolTotal)
	hdl, okHDL := latest.Results.Get(health.TestCholesterolHDL)
	if okTotal && okHDL {
		t, okT := total.Value.Float()
		h, okH := hdl.Value.Float()
		if okT && okH {
			if ratio, tier, ok := CholesterolRatio(t, h); ok {
				fmt.Fprintf(&b, "Total/HDL Ratio: %.1f (%s)\n%s\n", ratio, tier, ratioAdvice[tier])
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
