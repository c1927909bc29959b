package substitution

import (
	"math"
	"slices"
	"strings"

	"grocery-genius/internal/core/ingredient"
)

// FilterAll 不過濾飲食標籤
const FilterAll = "all"

// Substitution 替代食材
type Substitution struct {
	ID              string   `json:"id"`
	IngredientName  string   `json:"ingredient_name"`
	SubstituteName  string   `json:"substitute_name"`
	ConversionRatio float64  `json:"conversion_ratio"`
	DietaryTags     []string `json:"dietary_tags"`
	Notes           string   `json:"notes,omitempty"`
}

// HasTag 是否帶有指定飲食標籤
func (s Substitution) HasTag(tag string) bool {
	return slices.Contains(s.DietaryTags, tag)
}

// Group 同一關鍵字下的替代食材
type Group struct {
	Key     string
	Entries []Substitution
}

// Table 替代食材表
type Table []Group

// Matcher 替代食材查詢器
type Matcher struct {
	table Table
}

// NewMatcher 建立查詢器；table 為 nil 時使用 DefaultTable
func NewMatcher(table Table) *Matcher {
	if table == nil {
		table = DefaultTable
	}
	return &Matcher{table: table}
}

// Find 查詢替代食材。
// 名稱清理後與關鍵字做雙向子字串比對；相同替代名稱只保留一筆，位置取第一次出現、內容取最後一次出現。
// filter 為空字串或 "all" 時不依飲食標籤過濾。
func (m *Matcher) Find(ingredientName, filter string) []Substitution {
	name := ingredient.CleanName(ingredientName)
	if name == "" {
		return nil
	}

	var order []string
	byName := make(map[string]Substitution)
	for _, group := range m.table {
		if !strings.Contains(name, group.Key) && !strings.Contains(group.Key, name) {
			continue
		}
		for _, sub := range group.Entries {
			if _, seen := byName[sub.SubstituteName]; !seen {
				order = append(order, sub.SubstituteName)
			}
			byName[sub.SubstituteName] = sub
		}
	}

	result := make([]Substitution, 0, len(order))
	for _, substitute := range order {
		sub := byName[substitute]
		if filter != "" && filter != FilterAll && !sub.HasTag(filter) {
			continue
		}
		result = append(result, sub)
	}
	return result
}

// FindSubstitutions 使用內建資料查詢
func FindSubstitutions(ingredientName, filter string) []Substitution {
	return NewMatcher(nil).Find(ingredientName, filter)
}

// ScaleQuantity 依換算比例計算替代數量，四捨五入到小數一位
func ScaleQuantity(quantity, ratio float64) float64 {
	return math.Floor(quantity*ratio*10+0.5) / 10
}
