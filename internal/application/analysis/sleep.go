package analysis

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const (
	sleepShortHours = 7.0
	sleepLongHours  = 9.0
)

// Sleep averages every recorded night.
func Sleep(days []health.SleepRecord) string {
	avg, ok := health.AverageSleepHours(days)
	if !ok {
		return NoSleepData
	}
	var deep, rem float64
	for _, d := range days {
		deep += d.DeepSleepHours
		rem += d.RemSleepHours
	}
	n := float64(len(days))
	deep /= n
	rem /= n

	var b strings.Builder
	fmt.Fprintf(&b, "Sleep Analysis (%d night(s)):\n\n", len(days))
	fmt.Fprintf(&b, "Average total sleep: %.1f hours\n", avg)
	fmt.Fprintf(&b, "Average deep sleep: %.1f hours%s\n", deep, share(deep, avg))
	fmt.Fprintf(&b, "Average REM sleep: %.1f hours%s\n\n", rem, share(rem, avg))

	switch {
	case avg < sleepShortHours:
		b.WriteString("You are averaging less than the recommended 7-9 hours of sleep. Short sleep is " +
			"linked to higher blood sugar, blood pressure and weight gain. A consistent bedtime, " +
			"a dark quiet bedroom and less screen time before bed can help.")
	case avg > sleepLongHours:
		b.WriteString("You are averaging more than 9 hours of sleep. Regularly sleeping this long can " +
			"be a sign of poor sleep quality or an underlying condition; consider mentioning it to your doctor.")
	default:
		b.WriteString("Your average sleep duration is within the recommended 7-9 hours. Keep up your current routine.")
	}
	return b.String()
}

func share(part, total float64) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%.0f%% of total)", part/total*100)
}
