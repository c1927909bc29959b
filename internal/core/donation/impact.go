package donation

import "strings"

// 估算來源
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// Item 捐贈品項
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ItemImpact 品項的影響估算
type ItemImpact struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Meals     float64 `json:"meals"`
	Pounds    float64 `json:"pounds"`
	CO2Lbs    float64 `json:"co2_lbs"`
	Reasoning string  `json:"reasoning,omitempty"`
	Source    string  `json:"source"`
}

// Totals 捐贈總計
type Totals struct {
	Meals  float64 `json:"meals"`
	Pounds float64 `json:"pounds"`
	CO2Lbs float64 `json:"co2_lbs"`
}

// BreakdownItem 遠端影響服務回傳的單一品項
type BreakdownItem struct {
	Name      string  `json:"name"`
	Meals     float64 `json:"meals"`
	Pounds    float64 `json:"pounds"`
	Reasoning string  `json:"reasoning,omitempty"`
}

// EstimateItems 以本地規則估算每個品項
func (e *Estimator) EstimateItems(items []Item) []ItemImpact {
	result := make([]ItemImpact, 0, len(items))
	for _, item := range items {
		est := e.Estimate(item.Quantity, item.Unit, item.Name)
		result = append(result, ItemImpact{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Meals:    float64(est.Meals),
			Pounds:   est.Pounds,
			CO2Lbs:   est.CO2Lbs,
			Source:   SourceLocal,
		})
	}
	return result
}

// Sum 加總餐數與磅數；CO2 由總磅數重新計算
func Sum(items []ItemImpact) Totals {
	var t Totals
	for _, it := range items {
		t.Meals += it.Meals
		t.Pounds += it.Pounds
	}
	t.CO2Lbs = t.Pounds * CO2PerPound
	return t
}

// MergeBreakdown 將遠端結果合併回本地估算。
// 長度相同時依索引對應；否則依名稱（不分大小寫）對應，找不到的品項保留本地估算。
func MergeBreakdown(local []ItemImpact, remote []BreakdownItem) []ItemImpact {
	merged := make([]ItemImpact, len(local))
	copy(merged, local)
	if len(remote) == 0 {
		return merged
	}

	byIndex := len(remote) == len(local)
	for i := range merged {
		var (
			match BreakdownItem
			found bool
		)
		if byIndex {
			match, found = remote[i], true
		} else {
			match, found = findByName(remote, merged[i].Name)
		}
		if !found {
			continue
		}
		merged[i].Meals = match.Meals
		merged[i].Pounds = match.Pounds
		merged[i].CO2Lbs = match.Pounds * CO2PerPound
		merged[i].Reasoning = match.Reasoning
		merged[i].Source = SourceRemote
	}
	return merged
}

func findByName(items []BreakdownItem, name string) (BreakdownItem, bool) {
	for _, it := range items {
		if strings.EqualFold(strings.TrimSpace(it.Name), strings.TrimSpace(name)) {
			return it, true
		}
	}
	return BreakdownItem{}, false
}
