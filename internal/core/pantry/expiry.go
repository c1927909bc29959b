package pantry

import (
	"math"
	"strings"
	"time"

	"grocery-genius/internal/pkg/common"
)

// ExpiringWithinDays 距到期日幾天內視為即將過期
const ExpiringWithinDays = 3

// 可接受的到期日格式
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Item 庫存品項
type Item struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category,omitempty"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

// ParseExpiry 解析到期日
func ParseExpiry(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil 距到期日的天數（無條件進位）
func DaysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ExpiringSoon 回傳 0 到 3 天內到期的品項；沒有或無法解析到期日的品項略過。
// 未帶 ID 的品項會指派新的 ID。
func ExpiringSoon(items []Item, now time.Time) []Item {
	result := make([]Item, 0)
	for _, item := range items {
		expiry, ok := ParseExpiry(item.ExpiryDate)
		if !ok {
			continue
		}
		days := DaysUntil(expiry, now)
		if days < 0 || days > ExpiringWithinDays {
			continue
		}
		if item.ID == "" {
			item.ID = common.GenerateUUID()
		}
		result = append(result, item)
	}
	return result
}
