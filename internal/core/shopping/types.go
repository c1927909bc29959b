package shopping

// Item 庫存或購物清單中的品項（差異比對只使用名稱）
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// 由食譜加入購物清單時的預設欄位
const (
	CategoryRecipe = "recipe"
	PriorityMedium = "medium"
)

// ListEntry 準備寫入購物清單的品項
type ListEntry struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Priority string  `json:"priority"`
	Checked  bool    `json:"checked"`
}
