package analysis

import (
	"strings"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

type recommendation struct {
	title string
	items []string
	// applies reports whether the block is relevant to ds.
	applies func(ds *health.Dataset) bool
}

// recommendationBlocks keep their fixed numbers even when earlier ones are
// skipped.
var recommendationBlocks = []recommendation{
	{
		title: "1. Blood Sugar Management:",
		items: []string{
			"Limit added sugars and refined carbohydrates",
			"Increase fiber intake with whole grains, vegetables, and legumes",
			"Regular physical activity (aim for 150 minutes per week)",
			"Consider speaking with a healthcare provider about diabetes screening",
		},
		applies: func(ds *health.Dataset) bool {
			return latestStatus(ds, health.TestGlucose) == health.StatusElevated
		},
	},
	{
		title: "2. Cholesterol Management:",
		items: []string{
			"Reduce saturated and trans fats (limit red meat, full-fat dairy)",
			"Increase heart-healthy fats (olive oil, avocados, nuts)",
			"Add more soluble fiber (oats, beans, fruits)",
			"Regular physical activity",
			"Consider plant sterols/stanols if recommended",
		},
		applies: func(ds *health.Dataset) bool {
			return latestStatus(ds, health.TestCholesterolTotal) == health.StatusElevated ||
				latestStatus(ds, health.TestCholesterolLDL) == health.StatusElevated ||
				latestStatus(ds, health.TestTriglycerides) == health.StatusElevated
		},
	},
	{
		title: "3. Vitamin D Improvement:",
		items: []string{
			"Safe sun exposure (15-30 minutes several times weekly)",
			"Consume vitamin D-rich foods (fatty fish, fortified milk, egg yolks)",
			"Consider a vitamin D supplement (1000-2000 IU daily)",
		},
		applies: func(ds *health.Dataset) bool {
			return latestStatus(ds, health.TestVitaminD) == health.StatusDeficient
		},
	},
	{
		title: "4. Blood Pressure Management:",
		items: []string{
			"Reduce sodium intake (<2300mg daily)",
			"DASH diet (rich in fruits, vegetables, whole grains, lean proteins)",
			"Regular physical activity",
			"Limit alcohol consumption",
			"Stress management techniques",
		},
		applies: func(ds *health.Dataset) bool {
			v := ds.LatestVitals()
			return v != nil && v.BloodPressure != nil && v.BloodPressure.Status == health.StatusElevated
		},
	},
	{
		title: "5. Sleep Improvement:",
		items: []string{
			"Aim for 7-9 hours of sleep nightly",
			"Maintain a consistent sleep schedule",
			"Create a restful environment (dark, quiet, comfortable)",
			"Limit screen time before bed",
			"Avoid caffeine and large meals before bedtime",
		},
		applies: func(ds *health.Dataset) bool {
			avg, ok := health.AverageSleepHours(ds.Sleep())
			return ok && avg < sleepShortHours
		},
	},
}

var generalMaintenance = recommendation{
	title: "General Health Maintenance:",
	items: []string{
		"Stay hydrated (aim for 2-3 liters of water daily)",
		"Balanced diet rich in whole foods",
		"Regular physical activity (150+ minutes moderate activity weekly)",
		"Stress management (meditation, deep breathing, hobbies)",
		"Regular health check-ups and screenings",
	},
}

func latestStatus(ds *health.Dataset, name string) health.Status {
	bt := ds.LatestBloodTest()
	if bt == nil {
		return ""
	}
	r, ok := bt.Results.Get(name)
	if !ok {
		return ""
	}
	return r.Status
}

func (r recommendation) write(b *strings.Builder) {
	b.WriteString(r.title)
	b.WriteString("\n")
	for _, item := range r.items {
		b.WriteString("   - ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

// Recommendations builds the personalised advice blocks for ds. The general
// maintenance block is always present.
func Recommendations(ds *health.Dataset) string {
	var b strings.Builder
	b.WriteString("Personalized Health Recommendations:\n\n")
	for _, r := range recommendationBlocks {
		if r.applies(ds) {
			r.write(&b)
			b.WriteString("\n")
		}
	}
	generalMaintenance.write(&b)
	return strings.TrimRight(b.String(), "\n")
}
