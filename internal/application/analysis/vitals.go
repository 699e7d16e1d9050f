package analysis

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// Vitals reports the latest set of vital signs. Readings that were not taken
// are left out.
func Vitals(vitals []health.VitalsRecord) string {
	if len(vitals) == 0 {
		return NoVitalsData
	}
	latest := vitals[0]

	var b strings.Builder
	b.WriteString(header("Vital Signs Analysis", latest.Date))

	if bp := latest.BloodPressure; bp != nil {
		fmt.Fprintf(&b, "Blood Pressure: %s/%s mmHg (%s)\n", bp.Systolic, bp.Diastolic, bp.Status)
		switch {
		case bp.Status == health.StatusNormal:
			b.WriteString("Your blood pressure is within normal range.\n\n")
		case Advisory(vitalBloodPressure, bp.Status) != "":
			b.WriteString(Advisory(vitalBloodPressure, bp.Status))
			b.WriteString("\n\n")
		}
	}
	if hr := latest.HeartRate; hr != nil {
		fmt.Fprintf(&b, "Heart Rate: %s (%s)\n", withUnit(hr.Value, hr.Unit), hr.Status)
		writeAdvisory(&b, vitalHeartRate, hr.Status)
	}
	if ox := latest.OxygenSaturation; ox != nil {
		fmt.Fprintf(&b, "Oxygen Saturation: %s%s (%s)\n", ox.Value, ox.Unit, ox.Status)
		writeAdvisory(&b, vitalOxygenSaturation, ox.Status)
	}
	if t := latest.Temperature; t != nil {
		fmt.Fprintf(&b, "Body Temperature: %s (%s)\n", withUnit(t.Value, t.Unit), t.Status)
		writeAdvisory(&b, vitalTemperature, t.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeAdvisory(b *strings.Builder, metric string, status health.Status) {
	if text := Advisory(metric, status); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}
}
