package ingredient

import (
	"regexp"
	"strings"
)

const quantityToken = `(\d+(?:/\d+)?|\d+\.\d+)`

var (
	quantityUnitPattern = regexp.MustCompile(`(?i)^` + quantityToken +
		`\s*(cups?|cup|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|lb|grams?|g|kilograms?|kg|milliliters?|ml|liters?|l|cloves?|pieces?|pcs?|slices?)\s+(?:of\s+)?(.+)$`)
	quantityNamePattern = regexp.MustCompile(`(?i)^` + quantityToken + `\s+(?:whole|medium|large|small)?\s*(.+)$`)
	descriptivePattern  = regexp.MustCompile(`(?i)^(?:(?:a|an|one|some)\s+)?(?:(?:large|medium|small|ripe|fresh)\s+)?(.+)$`)
	leadingDigit        = regexp.MustCompile(`^\d`)
)

// instructionVerbs 出現在名稱中代表是烹調步驟而非食材
var instructionVerbs = []string{"mix", "stir", "cook", "heat", "add", "serve"}

// Rule 單一食材解析規則。
// Match 的 matched 表示此規則的結構吻合（吻合後不再嘗試後續規則），
// ok 表示產出的結果可用。
type Rule struct {
	Name  string
	match func(line string) (ing ParsedIngredient, matched, ok bool)
}

// Match 以此規則解析一行（呼叫端需先 trim 並轉小寫）
func (r Rule) Match(line string) (ing ParsedIngredient, matched, ok bool) {
	return r.match(line)
}

// QuantityUnitRule 數量 + 單位 + 名稱，例如 "2 cups flour"
var QuantityUnitRule = Rule{
	Name: "quantity_unit_name",
	match: func(line string) (ParsedIngredient, bool, bool) {
		m := quantityUnitPattern.FindStringSubmatch(line)
		if m == nil {
			return ParsedIngredient{}, false, false
		}
		quantity, ok := ParseQuantity(m[1])
		if !ok {
			return ParsedIngredient{}, true, false
		}
		name := CleanName(m[3])
		if !validNameLength(name) {
			return ParsedIngredient{}, true, false
		}
		return ParsedIngredient{Name: name, Quantity: quantity, Unit: strings.ToLower(m[2])}, true, true
	},
}

// QuantityNameRule 數量 + 名稱（無單位），例如 "3 eggs"
var QuantityNameRule = Rule{
	Name: "quantity_name",
	match: func(line string) (ParsedIngredient, bool, bool) {
		m := quantityNamePattern.FindStringSubmatch(line)
		if m == nil {
			return ParsedIngredient{}, false, false
		}
		quantity, ok := ParseQuantity(m[1])
		if !ok {
			return ParsedIngredient{}, true, false
		}
		name := CleanName(m[2])
		if !validNameLength(name) {
			return ParsedIngredient{}, true, false
		}
		return ParsedIngredient{Name: name, Quantity: quantity, Unit: DefaultUnit}, true, true
	},
}

// DescriptiveRule 不含數字的描述性名稱，例如 "a ripe banana"
var DescriptiveRule = Rule{
	Name: "descriptive_name",
	match: func(line string) (ParsedIngredient, bool, bool) {
		if leadingDigit.MatchString(line) {
			return ParsedIngredient{}, false, false
		}
		m := descriptivePattern.FindStringSubmatch(line)
		if m == nil {
			return ParsedIngredient{}, false, false
		}
		name := CleanName(m[1])
		if !validNameLength(name) || looksLikeInstruction(name) {
			return ParsedIngredient{}, true, false
		}
		return ParsedIngredient{Name: name, Quantity: 1, Unit: DefaultUnit}, true, true
	},
}

// DefaultRules 預設規則順序；順序即優先權
var DefaultRules = []Rule{QuantityUnitRule, QuantityNameRule, DescriptiveRule}

func looksLikeInstruction(name string) bool {
	for _, verb := range instructionVerbs {
		if strings.Contains(name, verb) {
			return true
		}
	}
	return false
}
