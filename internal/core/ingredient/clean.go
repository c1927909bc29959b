package ingredient

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// 描述性形容詞（新鮮、切碎、大小等）
	descriptorPattern = regexp.MustCompile(`(?i)\b(fresh|dried|raw|cooked|minced|chopped|diced|sliced|grated|large|medium|small|ripe|frozen|canned)\b`)
	punctuationPattern = regexp.MustCompile(`[,;()]`)
	// 行尾的份量提示，例如 "salt to taste"
	qualifierPattern = regexp.MustCompile(`(?i)\s+(to taste|as needed)$`)
)

// CleanName 清理食材名稱：轉小寫、移除形容詞與標點、去除行尾份量提示、合併空白
func CleanName(name string) string {
	name = strings.ToLower(name)
	name = descriptorPattern.ReplaceAllString(name, "")
	name = punctuationPattern.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")
	name = qualifierPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// validNameLength 名稱長度必須介於 2 與 40 之間（不含邊界）
func validNameLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 2 && n < 40
}

// ParseQuantity 解析數量 token（整數、小數或 a/b 分數）。
// 分數轉為小數並四捨五入到兩位；分母為零、NaN 或無限大時 ok 為 false。
func ParseQuantity(token string) (value float64, ok bool) {
	token = strings.TrimSpace(token)
	if num, den, found := strings.Cut(token, "/"); found {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		value = roundHalfUp(n/d*100) / 100
	} else {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
		value = v
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}
	return value, true
}

// roundHalfUp 四捨五入，.5 一律往正無限大進位
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
