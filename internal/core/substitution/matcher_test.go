package substitution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func substituteNames(subs []Substitution) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.SubstituteName)
	}
	return out
}

func TestFind(t *testing.T) {
	got := FindSubstitutions("Fresh Chicken Breast", FilterAll)
	assert.Equal(t, []string{"turkey", "tofu", "chickpeas", "tempeh", "seitan"}, substituteNames(got))
}

func TestFind_DietaryFilter(t *testing.T) {
	got := FindSubstitutions("rice", "keto")
	require.Len(t, got, 1)
	assert.Equal(t, "cauliflower rice", got[0].SubstituteName)

	assert.Empty(t, FindSubstitutions("rice", "meat"))
	assert.Len(t, FindSubstitutions("rice", ""), 3)
}

func TestFind_KeyContainsName(t *testing.T) {
	got := FindSubstitutions("pot", FilterAll)
	assert.Equal(t, []string{"cauliflower", "turnips", "celery root"}, substituteNames(got))
}

func TestFind_NoMatch(t *testing.T) {
	assert.Empty(t, FindSubstitutions("saffron", FilterAll))
	assert.Nil(t, FindSubstitutions("  fresh  ", FilterAll))
}

func TestFind_DuplicateKeepsFirstPositionLastValue(t *testing.T) {
	table := Table{
		{Key: "milk", Entries: []Substitution{
			{ID: "1", SubstituteName: "oat milk", ConversionRatio: 1, DietaryTags: []string{"vegan"}},
			{ID: "2", SubstituteName: "soy milk", ConversionRatio: 1, DietaryTags: []string{"vegan"}},
		}},
		{Key: "buttermilk", Entries: []Substitution{
			{ID: "3", SubstituteName: "oat milk", ConversionRatio: 0.9, DietaryTags: []string{"vegan"}, Notes: "add lemon"},
		}},
	}

	got := NewMatcher(table).Find("buttermilk", FilterAll)
	require.Len(t, got, 2)
	assert.Equal(t, "oat milk", got[0].SubstituteName)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "add lemon", got[0].Notes)
	assert.Equal(t, "soy milk", got[1].SubstituteName)
}

func TestFind_DefaultTableOverlap(t *testing.T) {
	// coconut oil and applesauce appear under both butter and oil
	got := FindSubstitutions("peanut butter oil", FilterAll)
	names := substituteNames(got)
	assert.Equal(t, []string{"coconut oil", "olive oil", "vegan butter", "applesauce", "avocado oil"}, names)
	assert.Equal(t, "140", got[0].ID)
	assert.Equal(t, "142", got[3].ID)
}

func TestScaleQuantity(t *testing.T) {
	assert.InDelta(t, 1.5, ScaleQuantity(2, 0.75), 1e-9)
	assert.InDelta(t, 0.3, ScaleQuantity(1, 0.25), 1e-9)
	assert.InDelta(t, 9, ScaleQuantity(3, 3), 1e-9)
	assert.InDelta(t, 0.2, ScaleQuantity(2, 0.1), 1e-9)
}

func TestHasTag(t *testing.T) {
	s := Substitution{DietaryTags: []string{"vegan", "gluten-free"}}
	assert.True(t, s.HasTag("gluten-free"))
	assert.False(t, s.HasTag("keto"))
}
