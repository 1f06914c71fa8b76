package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horecaseek-service/internal/domain"
)

func TestOpeningHours_UnmarshalStructured(t *testing.T) {
	raw := `{"lundi":{"open":"09:00","close":"17:00"},"mardi":null}`

	var oh domain.OpeningHours
	assert.NoError(t, json.Unmarshal([]byte(raw), &oh))
	assert.False(t, oh.IsRaw())
	assert.NotNil(t, oh.Structured["lundi"])
	assert.Equal(t, "09:00", oh.Structured["lundi"].Open)
	assert.Nil(t, oh.Structured["mardi"])
}

func TestOpeningHours_UnmarshalRawFallback(t *testing.T) {
	// Free-text hours that never were JSON objects keep the raw variant.
	var oh domain.OpeningHours
	assert.NoError(t, json.Unmarshal([]byte(`"tous les jours sauf le lundi"`), &oh))
	assert.True(t, oh.IsRaw())
	assert.Equal(t, "tous les jours sauf le lundi", oh.Raw)
	assert.Equal(t, "tous les jours sauf le lundi", oh.Display())
}

func TestOpeningHours_UnmarshalDoubleEncoded(t *testing.T) {
	// Some original rows stored the structured map as a JSON string.
	raw := `"{\"lundi\":{\"open\":\"10:00\",\"close\":\"22:00\"}}"`

	var oh domain.OpeningHours
	assert.NoError(t, json.Unmarshal([]byte(raw), &oh))
	assert.False(t, oh.IsRaw())
	assert.Equal(t, "22:00", oh.Structured["lundi"].Close)
}

func TestOpeningHours_Display(t *testing.T) {
	oh := domain.OpeningHours{Structured: map[string]*domain.TimeRange{
		"lundi":    {Open: "09:00", Close: "17:00"},
		"mardi":    nil,
		"dimanche": {Open: "11:00", Close: "15:00"},
	}}

	assert.Equal(t, "lundi: 09:00 - 17:00, mardi: fermé, dimanche: 11:00 - 15:00", oh.Display())
}

func TestOpeningHours_DisplayEmpty(t *testing.T) {
	var oh domain.OpeningHours
	assert.Equal(t, "non renseigné", oh.Display())
}

func TestOpeningHours_ScanAndValue(t *testing.T) {
	oh := domain.OpeningHours{Structured: map[string]*domain.TimeRange{
		"vendredi": {Open: "18:00", Close: "02:00"},
	}}

	val, err := oh.Value()
	assert.NoError(t, err)

	var decoded domain.OpeningHours
	assert.NoError(t, decoded.Scan(val))
	assert.Equal(t, "18:00", decoded.Structured["vendredi"].Open)

	var empty domain.OpeningHours
	assert.NoError(t, empty.Scan(nil))
	assert.True(t, empty.IsZero())

	emptyVal, err := empty.Value()
	assert.NoError(t, err)
	assert.Nil(t, emptyVal)
}
