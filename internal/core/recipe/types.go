package recipe

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"grocery-genius/internal/core/health"
	"grocery-genius/internal/pkg/common"
)

// DefaultServings 食譜未標示份量時的預設份數
const DefaultServings = 2

// 份量上下限
const (
	MinServings = 1
	MaxServings = 12
)

// Recipe 食譜（文字檢視）
type Recipe struct {
	Name           string            `json:"name"`
	Ingredients    string            `json:"ingredients,omitempty"`
	Instructions   string            `json:"instructions"`
	PrepTime       string            `json:"prep_time,omitempty"`
	CookTime       string            `json:"cook_time,omitempty"`
	Difficulty     string            `json:"difficulty,omitempty"`
	Servings       Servings          `json:"servings,omitempty"`
	Nutrition      *health.Nutrition `json:"nutrition,omitempty"`
	HealthBenefits string            `json:"health_benefits,omitempty"`
	BudgetTip      string            `json:"budget_tip,omitempty"`
	HealthGrade    health.Grade      `json:"health_grade,omitempty"`
	GradeColor     string            `json:"grade_color,omitempty"`
}

// GenerateRequest 依食材生成食譜的請求
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
	Dietary     string   `json:"dietary,omitempty"`
	Servings    int      `json:"servings,omitempty"`
}

// Servings 份數；可由數字或 "2 servings" 之類的字串解析
type Servings int

var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// UnmarshalJSON 接受數字或以數字開頭的字串，無法解析時為 0
func (s *Servings) UnmarshalJSON(data []byte) error {
	*s = Servings(looseNumber(data))
	return nil
}

// Value 份數；未設定時回傳 DefaultServings
func (s Servings) Value() int {
	if s <= 0 {
		return DefaultServings
	}
	return int(s)
}

// looseNumber 將 JSON 數字或字串轉為數值
func looseNumber(data []byte) float64 {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return 0
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	m := leadingNumber.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// looseText 將 JSON 字串、字串陣列或其他值轉為文字；陣列以換行串接
func looseText(data json.RawMessage) (string, bool) {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strings.TrimSpace(s), true
	}

	var list []interface{}
	if err := json.Unmarshal(data, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			switch v := item.(type) {
			case string:
				parts = append(parts, v)
			default:
				b, _ := json.Marshal(v)
				parts = append(parts, string(b))
			}
		}
		return common.JoinNonEmpty(parts, "\n"), true
	}

	return raw, true
}

// looseNutrition 解析營養資訊；各欄位可為數字或字串（例如 "350 kcal"）
func looseNutrition(data json.RawMessage) (*health.Nutrition, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return &health.Nutrition{
		Calories: looseNumber(fields["calories"]),
		Protein:  looseNumber(fields["protein"]),
		Carbs:    looseNumber(fields["carbs"]),
		Fat:      looseNumber(fields["fat"]),
		Fiber:    looseNumber(fields["fiber"]),
		Sodium:   looseNumber(fields["sodium"]),
	}, true
}
