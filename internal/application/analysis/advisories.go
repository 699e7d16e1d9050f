package analysis

import "github.com/bryanwahyu/health-agent/internal/domain/health"

// advisories maps a biomarker or vital sign to the paragraph shown for each
// status. A status with no entry renders no paragraph.
var advisories = map[string]map[health.Status]string{
	health.TestGlucose: {
		health.StatusElevated: "Your glucose level is elevated. This may indicate prediabetes or " +
			"could be due to recent food intake before the test. Consider follow-up testing " +
			"and consulting with your doctor about lifestyle modifications like diet changes " +
			"and increased physical activity.",
		health.StatusLow: "Your glucose level is low. Low blood sugar can cause shakiness, sweating " +
			"and confusion. Eat regular balanced meals, and talk to your doctor if you notice " +
			"these symptoms or if you take medication that lowers blood sugar.",
	},
	health.TestHbA1c: {
		health.StatusElevated: "Your HbA1c is elevated, which reflects higher average blood sugar over " +
			"the past two to three months. Discuss follow-up testing and a blood sugar management " +
			"plan with your doctor.",
	},
	health.TestCholesterolTotal: {
		health.StatusElevated: "Your total cholesterol is elevated. This increases risk for heart disease " +
			"and stroke. Consider dietary changes (reducing saturated fats), regular exercise, " +
			"and possibly medication if recommended by your doctor.",
	},
	health.TestCholesterolLDL: {
		health.StatusElevated: "Your LDL ('bad') cholesterol is elevated. This can lead to plaque buildup " +
			"in your arteries. Consider reducing saturated and trans fats in your diet, " +
			"increasing fiber intake, and regular exercise.",
	},
	health.TestCholesterolHDL: {
		health.StatusLow: "Your HDL ('good') cholesterol is low. HDL helps remove other forms of " +
			"cholesterol from your bloodstream. Regular aerobic exercise, not smoking, and " +
			"healthy fats such as olive oil and nuts can help raise it.",
	},
	health.TestTriglycerides: {
		health.StatusElevated: "Your triglyceride levels are elevated. This may increase risk of heart disease. " +
			"Consider limiting added sugars and simple carbohydrates, reducing alcohol intake, " +
			"and increasing physical activity.",
	},
	health.TestVitaminD: {
		health.StatusDeficient: "You have vitamin D deficiency. This can affect bone health and immune function. " +
			"Consider more sun exposure (safely), vitamin D-rich foods like fatty fish, " +
			"and supplements as recommended by your doctor.",
		health.StatusInsufficient: "Your vitamin D level is insufficient. It is not yet a deficiency, but " +
			"raising it supports bone and immune health. Safe sun exposure, fortified foods " +
			"and a modest supplement can help.",
		health.StatusElevated: "Your vitamin D level is higher than the reference range. This is usually " +
			"caused by high-dose supplements; review your supplement dosage with your doctor.",
	},
	health.TestVitaminB12: {
		health.StatusDeficient: "You have vitamin B12 deficiency. B12 is needed for nerve function and red " +
			"blood cell production. Include meat, fish, eggs or dairy, or fortified foods and " +
			"supplements if you follow a plant-based diet.",
		health.StatusLow: "Your vitamin B12 level is low. Low B12 can cause fatigue and tingling in the " +
			"hands and feet. Consider B12-rich foods or a supplement after talking to your doctor.",
		health.StatusElevated: "Your vitamin B12 level is elevated. This is commonly due to supplements; " +
			"mention it to your doctor at your next visit.",
	},
	health.TestIron: {
		health.StatusLow: "Your iron level is low. Low iron can lead to anaemia, fatigue and shortness of " +
			"breath. Include iron-rich foods such as red meat, legumes and leafy greens, paired " +
			"with vitamin C to improve absorption.",
		health.StatusDeficient: "You have iron deficiency. Talk to your doctor about the cause and whether " +
			"an iron supplement is appropriate.",
		health.StatusElevated: "Your iron level is elevated. Avoid iron supplements unless prescribed and " +
			"ask your doctor whether further testing for iron overload is needed.",
	},
	health.TestFerritin: {
		health.StatusLow: "Your ferritin is low, which means your iron stores are depleted. This often " +
			"precedes iron deficiency anaemia; iron-rich foods and a doctor-guided supplement can help.",
		health.StatusElevated: "Your ferritin is elevated. Ferritin can rise with inflammation or iron " +
			"overload; your doctor may want to repeat the test.",
	},
	health.TestCalcium: {
		health.StatusLow: "Your calcium level is low. Calcium supports bones, muscles and nerves. Dairy, " +
			"fortified plant milks and leafy greens are good sources; vitamin D helps absorption.",
		health.StatusElevated: "Your calcium level is elevated. Review calcium and vitamin D supplements " +
			"with your doctor, who may want to check your parathyroid function.",
	},
	health.TestMagnesium: {
		health.StatusLow: "Your magnesium level is low. Magnesium supports muscle, nerve and heart " +
			"function. Nuts, seeds, whole grains and leafy greens are good sources.",
		health.StatusDeficient: "You have magnesium deficiency. Ask your doctor whether a supplement is " +
			"appropriate and whether any medication could be contributing.",
	},
	vitalBloodPressure: {
		health.StatusElevated: "Your blood pressure is elevated. This may increase risk for heart disease and stroke. " +
			"Consider reducing sodium intake, regular exercise, stress management, " +
			"and maintaining a healthy weight.",
		health.StatusLow: "Your blood pressure is low. If you feel dizzy or lightheaded, stand up slowly, " +
			"stay hydrated and let your doctor know.",
	},
	vitalHeartRate: {
		health.StatusElevated: "Your resting heart rate is elevated. Caffeine, stress, dehydration and poor " +
			"sleep can raise it; regular aerobic exercise usually brings it down over time.",
		health.StatusLow: "Your resting heart rate is low. This is common in well-trained people, but " +
			"mention it to your doctor if you feel tired, dizzy or faint.",
	},
	vitalOxygenSaturation: {
		health.StatusLow: "Your oxygen saturation is below the normal range. If you are short of breath or " +
			"this persists, contact your doctor promptly.",
	},
	vitalTemperature: {
		health.StatusElevated: "Your body temperature is elevated, which may indicate a fever. Rest, drink " +
			"fluids, and seek medical advice if it persists or is very high.",
		health.StatusLow: "Your body temperature is below normal. Keep warm and re-measure; seek medical " +
			"advice if it stays low.",
	},
}

// Vital sign keys share the advisory table with biomarkers.
const (
	vitalBloodPressure    = "bloodPressure"
	vitalHeartRate        = "heartRate"
	vitalOxygenSaturation = "oxygenSaturation"
	vitalTemperature      = "temperature"
)

// Advisory returns the paragraph for a metric in a given status, or "".
func Advisory(metric string, status health.Status) string {
	return advisories[metric][status]
}
