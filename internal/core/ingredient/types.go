package ingredient

// DefaultUnit 無法辨識單位時使用的預設單位（件）
const DefaultUnit = "pc"

// MaxIngredients 單一食譜最多擷取的食材數量
const MaxIngredients = 20

// ParsedIngredient 解析後的食材
type ParsedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}
