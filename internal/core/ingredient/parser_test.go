package ingredient

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ParsedIngredient
	}{
		{"quantity unit name", "2 cups flour", ParsedIngredient{Name: "flour", Quantity: 2, Unit: "cups"}},
		{"fraction", "1/2 cup sugar", ParsedIngredient{Name: "sugar", Quantity: 0.5, Unit: "cup"}},
		{"no unit", "3 eggs", ParsedIngredient{Name: "eggs", Quantity: 3, Unit: "pc"}},
		{"descriptive with qualifier", "salt to taste", ParsedIngredient{Name: "salt", Quantity: 1, Unit: "pc"}},
		{"decimal", "1.5 lbs chicken breast", ParsedIngredient{Name: "chicken breast", Quantity: 1.5, Unit: "lbs"}},
		{"unit with of", "2 cloves of garlic", ParsedIngredient{Name: "garlic", Quantity: 2, Unit: "cloves"}},
		{"descriptors removed", "1 cup fresh chopped basil", ParsedIngredient{Name: "basil", Quantity: 1, Unit: "cup"}},
		{"size adjective without unit", "2 large onions", ParsedIngredient{Name: "onions", Quantity: 2, Unit: "pc"}},
		{"article and adjective", "a ripe avocado", ParsedIngredient{Name: "avocado", Quantity: 1, Unit: "pc"}},
		{"uppercase unit lowered", "2 TBSP Olive Oil", ParsedIngredient{Name: "olive oil", Quantity: 2, Unit: "tbsp"}},
		{"punctuation removed", "1 cup tomatoes (diced), drained", ParsedIngredient{Name: "tomatoes drained", Quantity: 1, Unit: "cup"}},
		{"third rounded", "1/3 cup milk", ParsedIngredient{Name: "milk", Quantity: 0.33, Unit: "cup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.InDelta(t, tt.want.Quantity, got.Quantity, 1e-9)
			assert.Equal(t, tt.want.Unit, got.Unit)
		})
	}
}

func TestParseLine_Skipped(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too short", "ab"},
		{"blank", "   "},
		{"zero denominator", "1/0 cup sugar"},
		{"instruction line", "stir until smooth"},
		{"name too short after cleaning", "2 cups ab"},
		{"name too long", "a " + strings.Repeat("x", 45)},
		{"only descriptors", "2 cups fresh chopped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseLine_Deterministic(t *testing.T) {
	first, ok1 := ParseLine("2 cups flour")
	second, ok2 := ParseLine("2 cups flour")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestRules_Priority(t *testing.T) {
	// "2 cups flour" is also structurally valid for the unit-less rule
	_, matched, _ := QuantityNameRule.Match("2 cups flour")
	require.True(t, matched)

	got, ok := ParseLine("2 cups flour")
	require.True(t, ok)
	assert.Equal(t, "cups", got.Unit, "quantity+unit rule must win")

	got, ok = NewParser(QuantityNameRule).Parse("2 cups flour")
	require.True(t, ok)
	assert.Equal(t, "cups flour", got.Name)
	assert.Equal(t, DefaultUnit, got.Unit)
}

func TestDescriptiveRule(t *testing.T) {
	_, matched, _ := DescriptiveRule.Match("3 eggs")
	assert.False(t, matched, "leading digit is not descriptive")

	ing, matched, ok := DescriptiveRule.Match("some fresh parsley")
	require.True(t, matched)
	require.True(t, ok)
	assert.Equal(t, "parsley", ing.Name)

	_, matched, ok = DescriptiveRule.Match("heat the pan")
	assert.True(t, matched)
	assert.False(t, ok)
}

func TestRejectedStructuralMatchStopsRuleChain(t *testing.T) {
	// the unit rule matches the shape but rejects the quantity; the line is dropped
	_, ok := ParseLine("1/0 cup sugar")
	assert.False(t, ok)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"2", 2, true},
		{"1.25", 1.25, true},
		{"1/2", 0.5, true},
		{"2/3", 0.67, true},
		{"1/8", 0.13, true},
		{"1/0", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"-1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseQuantity(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "garlic", CleanName("Minced Garlic"))
	assert.Equal(t, "pepper", CleanName("pepper, to taste"))
	assert.Equal(t, "green beans", CleanName("frozen   green beans"))
	assert.Equal(t, "rice", CleanName("rice as needed"))
}

func TestExtract_Dedup(t *testing.T) {
	got := Extract("2 cups flour\n1 cup flour")
	require.Len(t, got, 1)
	assert.Equal(t, "flour", got[0].Name)
	assert.InDelta(t, 2, got[0].Quantity, 1e-9)
	assert.Equal(t, "cups", got[0].Unit)
}

func TestExtract_Truncates(t *testing.T) {
	var lines []string
	for i := 0; i < 25; i++ {
		lines = append(lines, fmt.Sprintf("%d cups item%02d", i+1, i))
	}

	got := Extract(strings.Join(lines, "\n"))
	require.Len(t, got, MaxIngredients)
	assert.Equal(t, "item00", got[0].Name)
	assert.Equal(t, "item19", got[19].Name)
}

func TestExtract_SkipsBlankAndInvalidLines(t *testing.T) {
	text := "\n  2 cups flour  \n\nmix well\n1/0 cup sugar\n3 eggs\n"
	got := Extract(text)
	require.Len(t, got, 2)
	assert.Equal(t, "flour", got[0].Name)
	assert.Equal(t, "eggs", got[1].Name)
}

func TestExtract_EmptyInput(t *testing.T) {
	got := Extract("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtract_IndependentCalls(t *testing.T) {
	first := Extract("2 cups flour")
	second := Extract("2 cups flour")
	assert.Equal(t, first, second)
}
