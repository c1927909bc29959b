package recipe

import (
	"math"
	"strings"

	"grocery-genius/internal/core/health"
)

// DefaultNutrition 無法取得營養資訊時的預設值
var DefaultNutrition = health.Nutrition{Calories: 300, Protein: 15, Carbs: 35, Fat: 8, Fiber: 5, Sodium: 400}

var (
	baseNutrition  = health.Nutrition{Calories: 250, Protein: 12, Carbs: 30, Fat: 6, Fiber: 4, Sodium: 350}
	nutritionFloor = health.Nutrition{Calories: 150, Protein: 5, Carbs: 15, Fat: 3, Fiber: 2, Sodium: 200}
)

// nutritionAdjustment 文字中出現任一關鍵字時套用的增減量
type nutritionAdjustment struct {
	keywords []string
	delta    health.Nutrition
}

var nutritionAdjustments = []nutritionAdjustment{
	{[]string{"chicken", "beef", "fish", "salmon", "turkey"}, health.Nutrition{Protein: 15, Calories: 100}},
	{[]string{"quinoa", "rice", "pasta", "bread", "oats"}, health.Nutrition{Carbs: 20, Calories: 80}},
	{[]string{"avocado", "nuts", "oil", "butter", "cheese"}, health.Nutrition{Fat: 8, Calories: 70}},
	{[]string{"beans", "lentils", "broccoli", "spinach", "kale"}, health.Nutrition{Fiber: 6, Protein: 5}},
	{[]string{"vegetables", "salad", "greens", "tomato", "cucumber"}, health.Nutrition{Fiber: 3, Calories: -30}},
}

// benefitRule 文字中出現任一關鍵字時加入的健康益處
type benefitRule struct {
	keywords []string
	benefit  string
}

var benefitRules = []benefitRule{
	{[]string{"salmon", "fish", "omega"}, "Rich in omega-3 fatty acids for heart health"},
	{[]string{"spinach", "kale", "broccoli", "greens"}, "High in vitamins A, C, and K for immune support"},
	{[]string{"quinoa", "beans", "lentils", "protein"}, "Complete protein source for muscle maintenance"},
	{[]string{"berries", "antioxidant", "blueberries"}, "Packed with antioxidants to fight inflammation"},
	{[]string{"fiber", "whole grain", "oats"}, "High fiber content supports digestive health"},
	{[]string{"yogurt", "probiotic", "fermented"}, "Contains probiotics for gut health"},
}

var defaultBenefits = []string{"Balanced nutrition with quality ingredients", "Supports overall health and wellness"}

// maxBenefits 最多列出的健康益處數量
const maxBenefits = 3

// EstimateNutrition 依食譜文字中的關鍵字估算每份營養
func EstimateNutrition(text string) health.Nutrition {
	text = strings.ToLower(text)
	n := baseNutrition
	for _, adj := range nutritionAdjustments {
		if !containsAny(text, adj.keywords) {
			continue
		}
		n.Calories += adj.delta.Calories
		n.Protein += adj.delta.Protein
		n.Carbs += adj.delta.Carbs
		n.Fat += adj.delta.Fat
		n.Fiber += adj.delta.Fiber
		n.Sodium += adj.delta.Sodium
	}

	return health.Nutrition{
		Calories: math.Max(n.Calories, nutritionFloor.Calories),
		Protein:  math.Max(n.Protein, nutritionFloor.Protein),
		Carbs:    math.Max(n.Carbs, nutritionFloor.Carbs),
		Fat:      math.Max(n.Fat, nutritionFloor.Fat),
		Fiber:    math.Max(n.Fiber, nutritionFloor.Fiber),
		Sodium:   math.Max(n.Sodium, nutritionFloor.Sodium),
	}
}

// HealthBenefits 依關鍵字產生健康益處說明
func HealthBenefits(text string) string {
	text = strings.ToLower(text)
	var benefits []string
	for _, rule := range benefitRules {
		if containsAny(text, rule.keywords) {
			benefits = append(benefits, rule.benefit)
		}
	}
	if len(benefits) == 0 {
		benefits = defaultBenefits
	}
	if len(benefits) > maxBenefits {
		benefits = benefits[:maxBenefits]
	}
	return strings.Join(benefits, ". ") + "."
}

// ScaleServings 將營養資訊換算為指定份數，各欄位四捨五入到整數
func ScaleServings(r Recipe, servings int) Recipe {
	factor := float64(servings) / float64(r.Servings.Value())
	r.Servings = Servings(servings)
	if r.Nutrition != nil {
		n := *r.Nutrition
		r.Nutrition = &health.Nutrition{
			Calories: math.Floor(n.Calories*factor + 0.5),
			Protein:  math.Floor(n.Protein*factor + 0.5),
			Carbs:    math.Floor(n.Carbs*factor + 0.5),
			Fat:      math.Floor(n.Fat*factor + 0.5),
			Fiber:    math.Floor(n.Fiber*factor + 0.5),
			Sodium:   math.Floor(n.Sodium*factor + 0.5),
		}
	}
	return r
}

// ClampServings 份數限制在 1 到 12 之間；0 代表使用預設份數
func ClampServings(servings int) int {
	switch {
	case servings == 0:
		return DefaultServings
	case servings < MinServings:
		return MinServings
	case servings > MaxServings:
		return MaxServings
	default:
		return servings
	}
}

// Grade 計算並附加健康等級與顏色
func Grade(r Recipe) Recipe {
	r.HealthGrade = health.Score(r.Nutrition)
	r.GradeColor = health.Color(r.HealthGrade)
	return r
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
