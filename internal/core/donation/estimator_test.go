package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateImpact(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		item     string
		meals    int
		pounds   float64
		co2      float64
	}{
		{"rice by pound", 2, "lbs", "rice", 16, 2, 7.6},
		{"canned count", 3, "pc", "canned corn", 6, 1.5, 5.7},
		// beans precedes canned in the table
		{"canned beans hits beans first", 3, "pc", "canned beans", 18, 1.5, 5.7},
		{"ounces", 32, "oz", "pasta", 16, 16, 60.8},
		{"grams", 907.184, "g", "Brown Rice", 16, 453.592, 1723.6496},
		{"default servings", 3, "pc", "apples", 6, 1.5, 5.7},
		{"peanut butter", 1, "lbs", "Peanut Butter", 15, 1, 3.8},
		{"rounds half up", 1.25, "lbs", "soup", 3, 1.25, 4.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateImpact(tt.quantity, tt.unit, tt.item)
			assert.Equal(t, tt.meals, got.Meals)
			assert.InDelta(t, tt.pounds, got.Pounds, 1e-9)
			assert.InDelta(t, tt.co2, got.CO2Lbs, 1e-6)
		})
	}
}

func TestEstimator_TableOrder(t *testing.T) {
	e := NewEstimator(nil)
	assert.Equal(t, float64(8), e.ServingsPerUnit("rice and beans"))
	assert.Equal(t, float64(10), e.ServingsPerUnit("whole grain bread"))
	assert.Equal(t, float64(DefaultServingsPerUnit), e.ServingsPerUnit("tofu"))
}

func TestEstimator_CustomTable(t *testing.T) {
	e := NewEstimator([]ServingRule{{Keyword: "tofu", Servings: 5}})
	assert.Equal(t, 10, e.Estimate(2, "lbs", "firm tofu").Meals)
	assert.Equal(t, 4, e.Estimate(2, "lbs", "rice").Meals)
}

func TestEstimate_Deterministic(t *testing.T) {
	assert.Equal(t, EstimateImpact(3, "pc", "canned corn"), EstimateImpact(3, "pc", "canned corn"))
}
