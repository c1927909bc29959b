package donation

import (
	"math"
	"strings"
)

const (
	// CO2PerPound 每磅食物浪費的 CO2 排放量（磅）
	CO2PerPound = 3.8

	// CountUnitPounds 非重量單位每件的估計磅數
	CountUnitPounds = 0.5

	// DefaultServingsPerUnit 沒有關鍵字吻合時每單位的份數
	DefaultServingsPerUnit = 2

	gramsPerPound  = 453.592
	ouncesPerPound = 16
)

// ServingRule 品名關鍵字與每單位份數
type ServingRule struct {
	Keyword  string
	Servings float64
}

// DefaultServings 預設份數表；順序即比對優先權
var DefaultServings = []ServingRule{
	{"rice", 8},
	{"pasta", 8},
	{"beans", 6},
	{"canned", 2},
	{"cereal", 10},
	{"peanut butter", 15},
	{"bread", 10},
	{"meat", 4},
	{"vegetables", 4},
	{"fruit", 4},
	{"soup", 2},
}

// Estimate 單一品項的捐贈影響估算
type Estimate struct {
	Meals  int     `json:"meals"`
	Pounds float64 `json:"pounds"`
	CO2Lbs float64 `json:"co2_lbs"`
}

// Estimator 捐贈影響估算器
type Estimator struct {
	rules    []ServingRule
	fallback float64
}

// NewEstimator 建立估算器；rules 為 nil 時使用 DefaultServings
func NewEstimator(rules []ServingRule) *Estimator {
	if rules == nil {
		rules = DefaultServings
	}
	return &Estimator{rules: rules, fallback: DefaultServingsPerUnit}
}

// ServingsPerUnit 回傳第一個出現在品名中的關鍵字份數
func (e *Estimator) ServingsPerUnit(itemName string) float64 {
	name := strings.ToLower(itemName)
	for _, r := range e.rules {
		if strings.Contains(name, r.Keyword) {
			return r.Servings
		}
	}
	return e.fallback
}

// Estimate 估算餐數、磅數與 CO2 減量
func (e *Estimator) Estimate(quantity float64, unit, itemName string) Estimate {
	adjusted := quantity
	switch unit {
	case "oz":
		adjusted = quantity / ouncesPerPound
	case "g":
		adjusted = quantity / gramsPerPound
	}

	pounds := quantity * CountUnitPounds
	if unit == "lbs" {
		pounds = quantity
	}

	return Estimate{
		Meals:  int(math.Floor(adjusted*e.ServingsPerUnit(itemName) + 0.5)),
		Pounds: pounds,
		CO2Lbs: pounds * CO2PerPound,
	}
}

// EstimateImpact 使用預設份數表估算
func EstimateImpact(quantity float64, unit, itemName string) Estimate {
	return NewEstimator(nil).Estimate(quantity, unit, itemName)
}
