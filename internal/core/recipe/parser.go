package recipe

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"grocery-genius/internal/pkg/common"
)

// 文字解析的預設值
const (
	defaultPrepTime       = "15 min"
	defaultCookTime       = "20 min"
	defaultDifficulty     = "Easy"
	defaultHealthBenefits = "Nutritious and balanced meal"
	defaultBudgetTip      = "Buy ingredients in bulk to save money"
	blockBudgetTip        = "Use seasonal ingredients and buy in bulk for savings"
	blockIngredients      = "See instructions for ingredient list"
)

var (
	jsonFencePattern  = regexp.MustCompile("```json\\s*")
	fencePattern      = regexp.MustCompile("```\\s*")
	embeddedArray     = regexp.MustCompile(`\[[\s\S]*\]`)
	blankLinePattern  = regexp.MustCompile(`\n\s*\n`)
	numberingPattern  = regexp.MustCompile(`^\d+\.\s*`)
	nameQuotesPattern = regexp.MustCompile(`^["']+|["']+$`)
)

// rawRecipe AI 回傳的食譜物件，欄位型別不固定
type rawRecipe struct {
	Name           json.RawMessage `json:"name"`
	Ingredients    json.RawMessage `json:"ingredients"`
	Instructions   json.RawMessage `json:"instructions"`
	PrepTime       json.RawMessage `json:"prep_time"`
	CookTime       json.RawMessage `json:"cook_time"`
	Difficulty     json.RawMessage `json:"difficulty"`
	Servings       Servings        `json:"servings"`
	Nutrition      json.RawMessage `json:"nutrition"`
	HealthBenefits json.RawMessage `json:"health_benefits"`
	BudgetTip      json.RawMessage `json:"budget_tip"`
}

// ParseRecipesText 解析 AI 回傳的食譜文字，最多回傳 expected 筆。
// 依序嘗試：JSON 陣列、文字中嵌入的 JSON 陣列、以空行分隔的文字區塊。
func ParseRecipesText(text string, expected int) []Recipe {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Recipe{}
	}

	text = jsonFencePattern.ReplaceAllString(text, "")
	text = fencePattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if recipes := parseJSONArray(text); len(recipes) > 0 {
		return truncate(recipes, expected)
	}

	if m := embeddedArray.FindString(text); m != "" {
		if recipes := parseJSONArray(m); len(recipes) > 0 {
			return truncate(recipes, expected)
		}
		if recipes := parseJSONArray(common.QuoteJSONKeys(m)); len(recipes) > 0 {
			return truncate(recipes, expected)
		}
	}

	if recipes := parseBlocks(text); len(recipes) > 0 {
		return truncate(recipes, expected)
	}

	nutrition := DefaultNutrition
	return []Recipe{{
		Name:           "Healthy Recipe",
		Ingredients:    "See instructions",
		Instructions:   text,
		PrepTime:       defaultPrepTime,
		CookTime:       defaultCookTime,
		Difficulty:     defaultDifficulty,
		Servings:       DefaultServings,
		Nutrition:      &nutrition,
		HealthBenefits: "Nutritious and balanced meal with quality ingredients",
		BudgetTip:      "Choose seasonal ingredients for better prices",
	}}
}

// parseJSONArray 解析 JSON 陣列中的食譜物件；非物件元素略過
func parseJSONArray(text string) []Recipe {
	var items []json.RawMessage
	if err := common.ParseJSON(text, &items); err != nil {
		return nil
	}

	recipes := make([]Recipe, 0, len(items))
	for _, item := range items {
		if !strings.HasPrefix(strings.TrimSpace(string(item)), "{") {
			continue
		}
		var raw rawRecipe
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		recipes = append(recipes, raw.toRecipe())
	}
	return recipes
}

func (raw rawRecipe) toRecipe() Recipe {
	r := Recipe{
		Name:           CleanRecipeName(textOr(raw.Name, "")),
		Ingredients:    textOr(raw.Ingredients, ""),
		Instructions:   textOr(raw.Instructions, ""),
		PrepTime:       textOr(raw.PrepTime, defaultPrepTime),
		CookTime:       textOr(raw.CookTime, defaultCookTime),
		Difficulty:     textOr(raw.Difficulty, defaultDifficulty),
		Servings:       Servings(raw.Servings.Value()),
		HealthBenefits: textOr(raw.HealthBenefits, defaultHealthBenefits),
		BudgetTip:      textOr(raw.BudgetTip, defaultBudgetTip),
	}
	if n, ok := looseNutrition(raw.Nutrition); ok {
		r.Nutrition = n
	} else {
		nutrition := DefaultNutrition
		r.Nutrition = &nutrition
	}
	return r
}

func textOr(data json.RawMessage, fallback string) string {
	if s, ok := looseText(data); ok {
		return s
	}
	return fallback
}

// parseBlocks 以空行切分文字區塊，每個區塊視為一道食譜
func parseBlocks(text string) []Recipe {
	var recipes []Recipe
	i := 0
	for _, block := range blankLinePattern.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		i++

		name, instructions := splitBlock(block, i)
		combined := name + " " + instructions
		nutrition := EstimateNutrition(combined)
		recipes = append(recipes, Recipe{
			Name:           name,
			Ingredients:    blockIngredients,
			Instructions:   instructions,
			PrepTime:       defaultPrepTime,
			CookTime:       defaultCookTime,
			Difficulty:     defaultDifficulty,
			Servings:       DefaultServings,
			Nutrition:      &nutrition,
			HealthBenefits: HealthBenefits(combined),
			BudgetTip:      blockBudgetTip,
		})
	}
	return recipes
}

// splitBlock 取出區塊的名稱與步驟。
// 第一行為 "名稱: 內容" 時以冒號切分；沒有冒號時，六個字以內的第一行視為名稱。
func splitBlock(block string, index int) (name, instructions string) {
	lines := strings.Split(block, "\n")

	if strings.Contains(block, ":") {
		first := lines[0]
		if before, after, found := strings.Cut(first, ":"); found {
			name = stripNumbering(strings.TrimSpace(before))
			instructions = strings.TrimSpace(after)
			if len(lines) > 1 {
				instructions += "\n" + strings.TrimSpace(strings.Join(lines[1:], "\n"))
			}
			return name, instructions
		}
		before, after, _ := strings.Cut(block, ":")
		return stripNumbering(strings.TrimSpace(before)), strings.TrimSpace(after)
	}

	if len(lines) > 1 && len(strings.Fields(lines[0])) <= 6 {
		return stripNumbering(strings.TrimSpace(lines[0])), strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return fmt.Sprintf("Healthy Recipe %d", index), block
}

func stripNumbering(s string) string {
	return numberingPattern.ReplaceAllString(s, "")
}

// CleanRecipeName 移除名稱中的編號、引號與 markdown 殘留
func CleanRecipeName(name string) string {
	name = strings.ReplaceAll(name, "```json", "")
	name = strings.ReplaceAll(name, "```", "")
	name = nameQuotesPattern.ReplaceAllString(strings.TrimSpace(name), "")
	return strings.TrimSpace(stripNumbering(name))
}

func truncate(recipes []Recipe, expected int) []Recipe {
	if expected > 0 && len(recipes) > expected {
		return recipes[:expected]
	}
	return recipes
}
