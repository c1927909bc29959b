package shopping

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"grocery-genius/internal/core/ingredient"
)

// Aggregator 彙整一週內所有食譜的食材
type Aggregator struct {
	rule ingredient.Rule
}

// NewAggregator 建立彙整器，以數量 + 單位 + 名稱規則辨識食材行
func NewAggregator() *Aggregator {
	return &Aggregator{rule: ingredient.QuantityUnitRule}
}

// aggregation 保留插入順序的食材表
type aggregation struct {
	order []string
	items map[string]*ingredient.ParsedIngredient
}

func (a *aggregation) set(key string, ing ingredient.ParsedIngredient) {
	if existing, ok := a.items[key]; ok {
		*existing = ing
		return
	}
	a.order = append(a.order, key)
	a.items[key] = &ing
}

// Aggregate 依食譜順序、行順序合併食材。
// 同名同單位時數量相加；單位不同時以 "name (unit)" 另存，不做單位換算。
// 無法辨識的行以整行作為名稱，數量 1、單位 pc。
func (a *Aggregator) Aggregate(recipes []string) []ingredient.ParsedIngredient {
	agg := &aggregation{items: make(map[string]*ingredient.ParsedIngredient)}

	for _, text := range recipes {
		for _, raw := range strings.Split(text, "\n") {
			line := strings.ToLower(strings.TrimSpace(raw))
			if line == "" {
				continue
			}

			ing, matched, ok := a.rule.Match(line)
			if !matched || !ok {
				if utf8.RuneCountInString(line) > 2 {
					agg.set(line, ingredient.ParsedIngredient{Name: line, Quantity: 1, Unit: ingredient.DefaultUnit})
				}
				continue
			}

			existing, found := agg.items[ing.Name]
			switch {
			case !found:
				agg.set(ing.Name, ing)
			case existing.Unit == ing.Unit:
				existing.Quantity += ing.Quantity
			default:
				// 單位不同時另存為 "名稱 (單位)"；同鍵後寫覆蓋，不累加
				key := fmt.Sprintf("%s (%s)", ing.Name, ing.Unit)
				agg.set(key, ingredient.ParsedIngredient{Name: key, Quantity: ing.Quantity, Unit: ing.Unit})
			}
		}
	}

	result := make([]ingredient.ParsedIngredient, 0, len(agg.order))
	for _, key := range agg.order {
		result = append(result, *agg.items[key])
	}
	return result
}

// AggregateWeek 使用預設彙整器
func AggregateWeek(recipes []string) []ingredient.ParsedIngredient {
	return NewAggregator().Aggregate(recipes)
}
