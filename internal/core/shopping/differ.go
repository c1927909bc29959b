package shopping

import (
	"strings"

	"grocery-genius/internal/core/ingredient"
)

// DefaultExclusions 不需要購買的食材與誤判為食材的指示詞
var DefaultExclusions = []string{
	// 不需購買的液體
	"water", "ice", "ice cube", "ice water", "tap water", "cold water", "hot water", "boiling water",
	// 基本調味料
	"salt", "pepper", "black pepper", "white pepper", "sea salt", "kosher salt",
	// 指示詞
	"to taste", "as needed", "optional", "garnish", "serve", "serving",
}

// Differ 計算食譜缺少的食材
type Differ struct {
	exclusions []string
}

// NewDiffer 建立差異比對器；exclusions 為 nil 時使用 DefaultExclusions
func NewDiffer(exclusions []string) *Differ {
	if exclusions == nil {
		exclusions = DefaultExclusions
	}
	normalized := make([]string, 0, len(exclusions))
	for _, e := range exclusions {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			normalized = append(normalized, e)
		}
	}
	return &Differ{exclusions: normalized}
}

// ComputeMissing 回傳不在排除清單、庫存與購物清單中的食材，保留原始順序。
// 名稱比對採雙向子字串（不分大小寫）。
func (d *Differ) ComputeMissing(ingredients []ingredient.ParsedIngredient, pantry, shoppingList []Item) []ingredient.ParsedIngredient {
	pantryNames := lowerNames(pantry)
	existing := lowerNames(shoppingList)

	missing := make([]ingredient.ParsedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.ToLower(strings.TrimSpace(ing.Name))
		if name == "" {
			continue
		}
		if overlapsAny(name, d.exclusions) {
			continue
		}
		if overlapsAny(name, pantryNames) || overlapsAny(name, existing) {
			continue
		}
		missing = append(missing, ing)
	}
	return missing
}

// ComputeMissing 使用預設排除清單計算缺少的食材
func ComputeMissing(ingredients []ingredient.ParsedIngredient, pantry, shoppingList []Item) []ingredient.ParsedIngredient {
	return NewDiffer(nil).ComputeMissing(ingredients, pantry, shoppingList)
}

// ToListEntries 轉換為購物清單品項
func ToListEntries(ingredients []ingredient.ParsedIngredient) []ListEntry {
	entries := make([]ListEntry, 0, len(ingredients))
	for _, ing := range ingredients {
		entries = append(entries, ListEntry{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: CategoryRecipe,
			Priority: PriorityMedium,
		})
	}
	return entries
}

// lowerNames 空白名稱會與任何字串吻合，直接略過
func lowerNames(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if n := strings.ToLower(strings.TrimSpace(item.Name)); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func overlapsAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c || strings.Contains(name, c) || strings.Contains(c, name) {
			return true
		}
	}
	return false
}
