package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []Item {
	return []Item{
		{Name: "Rice", Quantity: 2, Unit: "lbs"},
		{Name: "canned corn", Quantity: 3, Unit: "pc"},
	}
}

func TestEstimateItemsAndSum(t *testing.T) {
	local := NewEstimator(nil).EstimateItems(sampleItems())
	require.Len(t, local, 2)
	assert.Equal(t, SourceLocal, local[0].Source)
	assert.InDelta(t, 16, local[0].Meals, 1e-9)

	totals := Sum(local)
	assert.InDelta(t, 22, totals.Meals, 1e-9)
	assert.InDelta(t, 3.5, totals.Pounds, 1e-9)
	assert.InDelta(t, 13.3, totals.CO2Lbs, 1e-9)
}

func TestMergeBreakdown_ByIndex(t *testing.T) {
	local := NewEstimator(nil).EstimateItems(sampleItems())
	remote := []BreakdownItem{
		{Name: "whatever", Meals: 14, Pounds: 2, Reasoning: "two pounds of rice"},
		{Name: "corn", Meals: 5, Pounds: 2.8},
	}

	merged := MergeBreakdown(local, remote)
	require.Len(t, merged, 2)
	assert.InDelta(t, 14, merged[0].Meals, 1e-9)
	assert.Equal(t, "two pounds of rice", merged[0].Reasoning)
	assert.Equal(t, SourceRemote, merged[1].Source)
	assert.InDelta(t, 2.8*CO2PerPound, merged[1].CO2Lbs, 1e-9)
	assert.Equal(t, SourceLocal, local[0].Source, "local slice is not modified")
}

func TestMergeBreakdown_ByNameWhenLengthsDiffer(t *testing.T) {
	local := NewEstimator(nil).EstimateItems(sampleItems())
	remote := []BreakdownItem{{Name: " CANNED CORN ", Meals: 4, Pounds: 2.5}}

	merged := MergeBreakdown(local, remote)
	assert.Equal(t, SourceLocal, merged[0].Source)
	assert.InDelta(t, 16, merged[0].Meals, 1e-9)
	assert.Equal(t, SourceRemote, merged[1].Source)
	assert.InDelta(t, 4, merged[1].Meals, 1e-9)
}

func TestMergeBreakdown_EmptyRemote(t *testing.T) {
	local := NewEstimator(nil).EstimateItems(sampleItems())
	assert.Equal(t, local, MergeBreakdown(local, nil))
}

func TestFoodBanks(t *testing.T) {
	banks := FoodBanks()
	require.Len(t, banks, 5)
	assert.Equal(t, "Foodbank of Southeastern Virginia", banks[0].Name)

	banks[0].AcceptedItems[0] = "changed"
	assert.Equal(t, "canned goods", FoodBanks()[0].AcceptedItems[0])

	fb, ok := FoodBankByID("4")
	require.True(t, ok)
	assert.Equal(t, "Chesapeake", fb.City)

	_, ok = FoodBankByID("missing")
	assert.False(t, ok)
}
