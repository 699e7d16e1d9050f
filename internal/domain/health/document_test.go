package health_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const sampleDoc = `{
  "user": {"name": "Alex Morgan", "age": 42},
  "bloodTests": [
    {
      "date": "2024-03-15",
      "results": {
        "glucose": {"value": "105", "unit": "mg/dL", "normalRange": "70-99", "status": "elevated"},
        "cholesterolTotal": {"value": 210, "unit": "mg/dL", "normalRange": "<200", "status": "elevated"},
        "cholesterolHDL": {"value": 55, "unit": "mg/dL", "normalRange": ">40", "status": "normal"},
        "vitaminD": {"value": "18", "unit": "ng/mL", "normalRange": "30-100", "status": "deficient"}
      }
    },
    {"date": "2023-09-01", "results": {}}
  ],
  "vitals": [
    {
      "date": "2024-03-15",
      "bloodPressure": {"systolic": 135, "diastolic": 85, "status": "elevated"},
      "heartRate": {"value": 72, "unit": "bpm", "status": "normal"}
    }
  ],
  "medicalHistory": {"conditions": []},
  "healthMetrics": {
    "sleepData": [
      {"date": "2024-03-14", "totalHours": 6.5, "deepSleepHours": 1.2, "remSleepHours": 1.5}
    ],
    "steps": [8000]
  }
}`

func TestParseDocument(t *testing.T) {
	doc, err := health.ParseDocument([]byte(sampleDoc))
	require.NoError(t, err)

	ds := doc.Dataset
	require.Len(t, ds.BloodTests, 2)

	latest := ds.LatestBloodTest()
	require.NotNil(t, latest)
	assert.Equal(t, "2024-03-15", latest.Date)

	t.Run("ResultsKeepFileOrder", func(t *testing.T) {
		var names []string
		for _, e := range latest.Results.Entries() {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{"glucose", "cholesterolTotal", "cholesterolHDL", "vitaminD"}, names)
	})

	t.Run("NumbersAndStringsBothDecode", func(t *testing.T) {
		glucose, ok := latest.Results.Get(health.TestGlucose)
		require.True(t, ok)
		v, ok := glucose.Value.Float()
		require.True(t, ok)
		assert.Equal(t, 105.0, v)

		total, _ := latest.Results.Get(health.TestCholesterolTotal)
		assert.Equal(t, "210", total.Value.String())
	})

	t.Run("MissingVitalsAreNil", func(t *testing.T) {
		vitals := ds.LatestVitals()
		require.NotNil(t, vitals)
		assert.NotNil(t, vitals.BloodPressure)
		assert.Nil(t, vitals.OxygenSaturation)
		assert.Nil(t, vitals.Temperature)
	})

	t.Run("SectionsAreVerbatim", func(t *testing.T) {
		metrics, err := doc.Section(health.SectionHealthMetrics)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(metrics, &m))
		assert.Contains(t, m, "steps")
	})
}

func TestParseDocument_Errors(t *testing.T) {
	t.Run("Malformed", func(t *testing.T) {
		_, err := health.ParseDocument([]byte(`{"bloodTests": {`))
		assert.ErrorIs(t, err, health.ErrMalformedDataset)
	})

	t.Run("WrongShape", func(t *testing.T) {
		_, err := health.ParseDocument([]byte(`{"bloodTests": {"date": "x"}}`))
		assert.ErrorIs(t, err, health.ErrMalformedDataset)
	})

	t.Run("MissingSection", func(t *testing.T) {
		doc, err := health.ParseDocument([]byte(`{"bloodTests": []}`))
		require.NoError(t, err)
		_, err = doc.Section(health.SectionUser)
		assert.ErrorIs(t, err, health.ErrSectionMissing)
	})

	t.Run("EmptyListsAreNotErrors", func(t *testing.T) {
		doc, err := health.ParseDocument([]byte(`{}`))
		require.NoError(t, err)
		assert.Nil(t, doc.Dataset.LatestBloodTest())
		assert.Nil(t, doc.Dataset.LatestVitals())
		assert.Empty(t, doc.Dataset.Sleep())
	})
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status  health.Status
		inRange bool
		flagged bool
	}{
		{health.StatusNormal, true, false},
		{health.StatusOptimal, true, false},
		{health.StatusElevated, false, true},
		{health.StatusDeficient, false, true},
		{health.StatusUnknown, false, false},
		{"", false, false},
		{"borderline", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.inRange, tc.status.InRange())
			assert.Equal(t, tc.flagged, tc.status.Flagged())
		})
	}
}

func TestQuantity(t *testing.T) {
	var q health.Quantity
	require.NoError(t, json.Unmarshal([]byte(`"5.7"`), &q))
	f, ok := q.Float()
	assert.True(t, ok)
	assert.Equal(t, 5.7, f)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, `5.7`, string(b))

	text := health.NewQuantity("n/a")
	_, ok = text.Float()
	assert.False(t, ok)
	b, err = json.Marshal(text)
	require.NoError(t, err)
	assert.Equal(t, `"n/a"`, string(b))

	assert.True(t, health.Quantity{}.IsZero())
}

func TestAverageSleepHours(t *testing.T) {
	avg, ok := health.AverageSleepHours([]health.SleepRecord{{TotalHours: 6}, {TotalHours: 6.5}, {TotalHours: 7}})
	assert.True(t, ok)
	assert.InDelta(t, 6.5, avg, 1e-9)

	_, ok = health.AverageSleepHours(nil)
	assert.False(t, ok)
}
