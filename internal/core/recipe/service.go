package recipe

import (
	"context"
	"fmt"
	"strings"

	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/core/ai/service"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"go.uber.org/zap"
)

// Generator AI 文字生成
type Generator interface {
	ProcessRequest(ctx context.Context, req *provider.Request) (*service.Response, error)
}

const (
	generationMaxTokens   = 1500
	generationTemperature = 0.7
	// specificDishWords 第一個項目超過此字數時視為指定菜名
	specificDishWords = 3
)

const systemPrompt = `You are a professional nutritionist and chef assistant. You create detailed recipes with exact measurements and nutritional information.

Key requirements:
1. Provide ONE normal recipe and TWO healthy, budget-friendly recipes
2. Use exact measurements for ALL ingredients (cups, tbsp, tsp, oz, lbs, pieces)
3. List ingredients separately from instructions
4. Include complete nutritional information
5. Focus on affordable, nutritious ingredients
6. Provide practical cooking tips

Output structured JSON format for easy parsing.`

// GenerationService 食譜生成服務
// --------------------------------------------------
type GenerationService struct {
	generator       Generator
	count           int
	defaultServings int
}

// NewGenerationService 創建食譜生成服務
func NewGenerationService(generator Generator, cfg config.RecipesConfig) *GenerationService {
	count := cfg.Count
	if count <= 0 {
		count = 3
	}
	return &GenerationService{
		generator:       generator,
		count:           count,
		defaultServings: ClampServings(cfg.DefaultServings),
	}
}

// Generate 依食材生成食譜，回傳固定數量並換算份量、附加健康等級
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) ([]Recipe, error) {
	ingredients := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return []Recipe{{
			Name:         "No ingredients provided",
			Instructions: "Please provide at least one ingredient.",
		}}, nil
	}

	prompt := BuildPrompt(ingredients, req.Dietary, s.count)
	resp, err := s.generator.ProcessRequest(ctx,
		provider.NewRequest(systemPrompt, prompt, generationMaxTokens, generationTemperature))
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, common.NewError(common.ErrCodeAIService, "empty AI response", common.ErrAIServiceError.Status, nil)
	}

	common.LogDebug("AI 回應內容 (recipes/generate)",
		zap.Int("ai_response_length", len(resp.Content)),
		zap.Bool("cache_hit", resp.CacheHit),
	)

	recipes := ParseRecipesText(resp.Content, s.count)
	for len(recipes) < s.count {
		recipes = append(recipes, placeholderRecipe(len(recipes)+1))
	}

	servings := s.defaultServings
	if req.Servings != 0 {
		servings = ClampServings(req.Servings)
	}
	for i := range recipes {
		recipes[i] = Grade(ScaleServings(recipes[i], servings))
	}

	return recipes, nil
}

// BuildPrompt 組合使用者提示詞；第一個項目字數較多時視為指定菜名，其餘為可搭配的食材
func BuildPrompt(ingredients []string, dietary string, count int) string {
	var request string
	if len(strings.Fields(ingredients[0])) > specificDishWords {
		request = fmt.Sprintf("Create a recipe for: %s", ingredients[0])
		if len(ingredients) > 1 {
			request += fmt.Sprintf("\nIncorporate these ingredients when possible: %s", strings.Join(ingredients[1:], ", "))
		}
	} else {
		request = fmt.Sprintf("Using these ingredients: %s", strings.Join(ingredients, ", "))
	}

	if dietary = strings.TrimSpace(dietary); dietary != "" {
		request += fmt.Sprintf("\nDietary preference: %s", dietary)
	}

	return fmt.Sprintf(`%s

Create EXACTLY %d different recipes (DO NOT number the recipe names):
- First recipe: A normal, delicious recipe
- The others: Healthy, budget-friendly alternatives

For EACH recipe provide:
- Recipe name (WITHOUT numbering like "1.", "Recipe 1:", etc.)
- Complete ingredient list with exact measurements (format: "quantity unit ingredient")
- Step-by-step cooking instructions (numbered steps)
- Prep time and cook time
- Difficulty level (Easy/Medium/Hard)
- Serving size (default 2 servings)
- Nutrition per serving (calories, protein, carbs, fat, fiber, sodium)
- Health benefits
- Budget-saving tip

CRITICAL: Return as JSON array with this exact structure. DO NOT include numbers in recipe names:
[
  {
    "name": "Creamy Garlic Pasta",
    "ingredients": "2 cups rice\n1 tbsp olive oil\n3 cloves garlic",
    "instructions": "1. First step...\n2. Second step...",
    "prep_time": "15 min",
    "cook_time": "20 min",
    "difficulty": "Easy",
    "servings": 2,
    "nutrition": {"calories": 350, "protein": 20, "carbs": 45, "fat": 10, "fiber": 6, "sodium": 400},
    "health_benefits": "Rich in...",
    "budget_tip": "Buy in bulk..."
  }
]

Make sure ALL ingredients mentioned in instructions are listed in the ingredients field with measurements.`, request, count)
}

func placeholderRecipe(n int) Recipe {
	nutrition := DefaultNutrition
	return Recipe{
		Name:           fmt.Sprintf("Recipe %d", n),
		Ingredients:    "See instructions for ingredients",
		Instructions:   "Recipe generation incomplete. Please try again.",
		PrepTime:       defaultPrepTime,
		CookTime:       defaultCookTime,
		Difficulty:     defaultDifficulty,
		Servings:       DefaultServings,
		Nutrition:      &nutrition,
		HealthBenefits: "Nutritious meal",
		BudgetTip:      "Use seasonal ingredients",
	}
}
