package health

import "strings"

// Nutrition 每份營養資訊
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Grade 健康等級
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
)

// baseScore 加減分前的起始分數
const baseScore = 70

// gradeThresholds 由高到低，分數大於等於門檻即取得該等級
var gradeThresholds = []struct {
	min   int
	grade Grade
}{
	{95, GradeAPlus},
	{90, GradeA},
	{85, GradeAMinus},
	{80, GradeBPlus},
	{75, GradeB},
	{70, GradeBMinus},
	{65, GradeCPlus},
	{60, GradeC},
}

// Points 計算營養分數（不做上下限裁切）
func Points(n Nutrition) int {
	score := baseScore

	switch {
	case n.Protein >= 25:
		score += 12
	case n.Protein >= 20:
		score += 10
	case n.Protein >= 15:
		score += 6
	}

	switch {
	case n.Fiber >= 8:
		score += 12
	case n.Fiber >= 6:
		score += 8
	case n.Fiber >= 4:
		score += 4
	}

	switch {
	case n.Calories > 700:
		score -= 15
	case n.Calories > 600:
		score -= 10
	case n.Calories >= 350 && n.Calories <= 500:
		score += 5
	}

	switch {
	case n.Sodium > 1000:
		score -= 15
	case n.Sodium > 800:
		score -= 10
	case n.Sodium < 400:
		score += 8
	}

	switch {
	case n.Fat > 25:
		score -= 8
	case n.Fat > 20:
		score -= 5
	case n.Fat >= 10 && n.Fat <= 15:
		score += 5
	}

	return score
}

// GradeFor 分數對應等級
func GradeFor(score int) Grade {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return GradeD
}

// Score 計算食譜健康等級；沒有營養資訊時回傳 B
func Score(n *Nutrition) Grade {
	if n == nil {
		return GradeB
	}
	return GradeFor(Points(*n))
}

// Color 等級對應的顯示顏色
func Color(g Grade) string {
	switch {
	case strings.HasPrefix(string(g), "A"):
		return "#10b981"
	case strings.HasPrefix(string(g), "B"):
		return "#3b82f6"
	case strings.HasPrefix(string(g), "C"):
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}
