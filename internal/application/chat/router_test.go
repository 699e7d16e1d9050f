package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"what's my cholesterol and blood test result", IntentCholesterol},
		{"Is my LDL ok?", IntentCholesterol},
		{"my glucose in the blood test", IntentGlucose},
		{"HbA1c please", IntentGlucose},
		{"do I need more Vitamin D", IntentVitamins},
		{"show my blood test", IntentBloodPanel},
		{"How was my BLOOD WORK?", IntentBloodPanel},
		{"what about my blood pressure", IntentVitals},
		{"vital signs", IntentVitals},
		{"any recommendations?", IntentRecommendations},
		{"give me some advice", IntentRecommendations},
		{"what's my health status", IntentOverview},
		{"how much sleep am I getting", IntentSleep},
		{"what is my A1C?", IntentGlucose},
		{"is my iron low", IntentVitamins},
		{"B12, ferritin", IntentVitamins},
		{"check my labs", IntentBloodPanel},
		{"my pulse is fast", IntentVitals},
		{"how can I improve my sleep environment?", IntentSleep},
		{"does my environment affect my sleep", IntentSleep},
		{"I had an impulse to ask about my sleep", IntentSleep},
		{"any tips for falling asleep", IntentSleep},
		{"hello there", IntentNone},
		{"", IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.message))
		})
	}
}
