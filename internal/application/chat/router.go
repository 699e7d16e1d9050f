package chat

import "strings"

type Intent string

const (
	IntentCholesterol     Intent = "cholesterol"
	IntentGlucose         Intent = "glucose"
	IntentVitamins        Intent = "vitamins"
	IntentBloodPanel      Intent = "blood_panel"
	IntentVitals          Intent = "vitals"
	IntentRecommendations Intent = "recommendations"
	IntentOverview        Intent = "overview"
	IntentSleep           Intent = "sleep"
	IntentNone            Intent = "none"
)

// Order matters for priority: specific biomarkers come before the generic
// blood test terms, so "cholesterol and blood test" is a cholesterol question.
// terms match anywhere in the message; words only match as whole tokens,
// so "iron" does not fire on "environment".
var routes = []struct {
	intent Intent
	terms  []string
	words  []string
}{
	{IntentCholesterol, []string{"cholesterol", "triglyceride", "lipid"}, []string{"ldl", "hdl"}},
	{IntentGlucose, []string{"glucose", "blood sugar", "hba1c", "diabetes", "diabetic"}, []string{"a1c"}},
	{IntentVitamins, []string{"vitamin", "ferritin", "calcium", "magnesium", "mineral"}, []string{"b12", "iron"}},
	{IntentBloodPanel, []string{"blood test", "blood work", "bloodwork", "lab result", "lab test"}, []string{"labs"}},
	{IntentVitals, []string{"vital", "blood pressure", "heart rate", "oxygen", "temperature"}, []string{"pulse"}},
	{IntentRecommendations, []string{"recommend", "advice", "suggestion", "suggest"}, nil},
	{IntentOverview, []string{"health status", "health overview", "my health", "overview"}, nil},
	{IntentSleep, []string{"sleep", "insomnia"}, nil},
}

// Route picks the analyzer for a message. The first keyword group that
// matches wins; IntentNone means no local analyzer applies.
func Route(message string) Intent {
	m := strings.ToLower(message)
	tokens := " " + tokenize(m) + " "
	for _, r := range routes {
		if containsAny(m, r.terms...) || containsWord(tokens, r.words...) {
			return r.intent
		}
	}
	return IntentNone
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// containsWord expects padded to be a space-joined token list with a
// leading and trailing space.
func containsWord(padded string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}

// tokenize splits a lower-cased message on anything that is not a letter
// or digit and joins the tokens with single spaces.
func tokenize(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	return strings.Join(fields, " ")
}
