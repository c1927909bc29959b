package substitution

// DefaultTable 內建替代食材資料；群組順序即輸出順序
var DefaultTable = Table{
	{
		Key: "chicken",
		Entries: []Substitution{
			{ID: "1", IngredientName: "chicken", SubstituteName: "turkey", ConversionRatio: 1.0, DietaryTags: []string{"meat"}, Notes: "Similar cooking time and texture"},
			{ID: "2", IngredientName: "chicken", SubstituteName: "tofu", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Press tofu first, marinate longer"},
			{ID: "3", IngredientName: "chicken", SubstituteName: "chickpeas", ConversionRatio: 1.5, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Higher quantity for similar protein"},
			{ID: "4", IngredientName: "chicken", SubstituteName: "tempeh", ConversionRatio: 0.8, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Denser protein, steam to reduce bitterness"},
			{ID: "5", IngredientName: "chicken", SubstituteName: "seitan", ConversionRatio: 0.9, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "High protein, wheat-based (not gluten-free)"},
		},
	},
	{
		Key: "beef",
		Entries: []Substitution{
			{ID: "10", IngredientName: "beef", SubstituteName: "ground turkey", ConversionRatio: 1.0, DietaryTags: []string{"meat"}, Notes: "Leaner option, similar texture"},
			{ID: "11", IngredientName: "beef", SubstituteName: "lentils", ConversionRatio: 1.2, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Great for tacos, chili, bolognese"},
			{ID: "12", IngredientName: "beef", SubstituteName: "mushrooms", ConversionRatio: 1.5, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Meaty texture, umami flavor"},
			{ID: "13", IngredientName: "beef", SubstituteName: "black beans", ConversionRatio: 1.3, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Perfect for burgers and tacos"},
			{ID: "14", IngredientName: "beef", SubstituteName: "textured vegetable protein", ConversionRatio: 0.7, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Rehydrate before use, absorbs flavors well"},
		},
	},
	{
		Key: "pork",
		Entries: []Substitution{
			{ID: "20", IngredientName: "pork", SubstituteName: "chicken thighs", ConversionRatio: 1.0, DietaryTags: []string{"meat"}, Notes: "Similar fat content and flavor"},
			{ID: "21", IngredientName: "pork", SubstituteName: "jackfruit", ConversionRatio: 1.2, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Shreds like pulled pork"},
			{ID: "22", IngredientName: "pork", SubstituteName: "tempeh bacon", ConversionRatio: 0.8, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Smoky flavor, crispy texture"},
		},
	},
	{
		Key: "fish",
		Entries: []Substitution{
			{ID: "30", IngredientName: "fish", SubstituteName: "tofu", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Firm tofu works best, coat in nori for ocean flavor"},
			{ID: "31", IngredientName: "fish", SubstituteName: "hearts of palm", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Flaky texture similar to fish"},
			{ID: "32", IngredientName: "fish", SubstituteName: "banana blossom", ConversionRatio: 1.1, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Shreds like fish, absorbs marinades well"},
		},
	},
	{
		Key: "salmon",
		Entries: []Substitution{
			{ID: "35", IngredientName: "salmon", SubstituteName: "trout", ConversionRatio: 1.0, DietaryTags: []string{"meat"}, Notes: "Similar omega-3 content"},
			{ID: "36", IngredientName: "salmon", SubstituteName: "marinated tofu", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Use smoked paprika for flavor"},
			{ID: "37", IngredientName: "salmon", SubstituteName: "carrot lox", ConversionRatio: 1.2, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Thinly sliced, marinated carrots"},
		},
	},
	{
		Key: "shrimp",
		Entries: []Substitution{
			{ID: "40", IngredientName: "shrimp", SubstituteName: "scallops", ConversionRatio: 1.0, DietaryTags: []string{"meat"}, Notes: "Similar texture and cooking time"},
			{ID: "41", IngredientName: "shrimp", SubstituteName: "hearts of palm", ConversionRatio: 1.1, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Cut into rounds, similar bite"},
			{ID: "42", IngredientName: "shrimp", SubstituteName: "king oyster mushrooms", ConversionRatio: 1.3, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Score and season for shrimp-like texture"},
		},
	},
	{
		Key: "milk",
		Entries: []Substitution{
			{ID: "50", IngredientName: "milk", SubstituteName: "almond milk", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Light flavor, works for most recipes"},
			{ID: "51", IngredientName: "milk", SubstituteName: "oat milk", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Creamier texture, great for coffee"},
			{ID: "52", IngredientName: "milk", SubstituteName: "coconut milk", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "Rich and creamy, adds coconut flavor"},
			{ID: "53", IngredientName: "milk", SubstituteName: "soy milk", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "High protein, neutral flavor"},
		},
	},
	{
		Key: "butter",
		Entries: []Substitution{
			{ID: "60", IngredientName: "butter", SubstituteName: "coconut oil", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "Use refined for no coconut flavor"},
			{ID: "61", IngredientName: "butter", SubstituteName: "olive oil", ConversionRatio: 0.75, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Reduce quantity by 25%"},
			{ID: "62", IngredientName: "butter", SubstituteName: "vegan butter", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "1:1 replacement in all recipes"},
			{ID: "63", IngredientName: "butter", SubstituteName: "applesauce", ConversionRatio: 0.5, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "For baking only, use half the amount"},
		},
	},
	{
		Key: "cheese",
		Entries: []Substitution{
			{ID: "70", IngredientName: "cheese", SubstituteName: "nutritional yeast", ConversionRatio: 0.3, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Cheesy flavor, use much less"},
			{ID: "71", IngredientName: "cheese", SubstituteName: "cashew cheese", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Blend soaked cashews with lemon"},
			{ID: "72", IngredientName: "cheese", SubstituteName: "vegan cheese shreds", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Melts like dairy cheese"},
		},
	},
	{
		Key: "cream",
		Entries: []Substitution{
			{ID: "80", IngredientName: "cream", SubstituteName: "coconut cream", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "Rich and thick, slight coconut flavor"},
			{ID: "81", IngredientName: "cream", SubstituteName: "cashew cream", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Blend soaked cashews with water"},
			{ID: "82", IngredientName: "cream", SubstituteName: "oat cream", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Neutral flavor, good for sauces"},
		},
	},
	{
		Key: "yogurt",
		Entries: []Substitution{
			{ID: "85", IngredientName: "yogurt", SubstituteName: "coconut yogurt", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Creamy with slight coconut taste"},
			{ID: "86", IngredientName: "yogurt", SubstituteName: "cashew yogurt", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Tangy, probiotic-rich"},
			{ID: "87", IngredientName: "yogurt", SubstituteName: "soy yogurt", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "High protein, neutral flavor"},
		},
	},
	{
		Key: "egg",
		Entries: []Substitution{
			{ID: "90", IngredientName: "egg", SubstituteName: "flax egg", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "1 tbsp flax + 3 tbsp water per egg"},
			{ID: "91", IngredientName: "egg", SubstituteName: "chia egg", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "1 tbsp chia + 3 tbsp water per egg"},
			{ID: "92", IngredientName: "egg", SubstituteName: "applesauce", ConversionRatio: 0.25, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "1/4 cup per egg, for baking"},
			{ID: "93", IngredientName: "egg", SubstituteName: "aquafaba", ConversionRatio: 3.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "3 tbsp chickpea water per egg"},
		},
	},
	{
		Key: "rice",
		Entries: []Substitution{
			{ID: "100", IngredientName: "rice", SubstituteName: "cauliflower rice", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Low carb, quick cooking"},
			{ID: "101", IngredientName: "rice", SubstituteName: "quinoa", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}, Notes: "Higher protein, complete amino acids"},
			{ID: "102", IngredientName: "rice", SubstituteName: "bulgur", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Nutty flavor, faster cooking"},
		},
	},
	{
		Key: "pasta",
		Entries: []Substitution{
			{ID: "110", IngredientName: "pasta", SubstituteName: "zucchini noodles", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Low carb, spiralize zucchini"},
			{ID: "111", IngredientName: "pasta", SubstituteName: "chickpea pasta", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "gluten-free"}, Notes: "High protein, gluten-free"},
			{ID: "112", IngredientName: "pasta", SubstituteName: "shirataki noodles", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "Zero calorie, rinse well"},
		},
	},
	{
		Key: "flour",
		Entries: []Substitution{
			{ID: "120", IngredientName: "flour", SubstituteName: "almond flour", ConversionRatio: 1.0, DietaryTags: []string{"keto", "gluten-free"}, Notes: "Low carb, add xanthan gum"},
			{ID: "121", IngredientName: "flour", SubstituteName: "coconut flour", ConversionRatio: 0.25, DietaryTags: []string{"keto", "gluten-free"}, Notes: "Very absorbent, use 1/4 amount"},
			{ID: "122", IngredientName: "flour", SubstituteName: "oat flour", ConversionRatio: 1.0, DietaryTags: []string{"vegetarian"}, Notes: "Mild flavor, slightly denser"},
		},
	},
	{
		Key: "bread",
		Entries: []Substitution{
			{ID: "125", IngredientName: "bread", SubstituteName: "lettuce wraps", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Low carb, crunchy"},
			{ID: "126", IngredientName: "bread", SubstituteName: "cloud bread", ConversionRatio: 1.0, DietaryTags: []string{"keto", "gluten-free"}, Notes: "Made with eggs and cream cheese"},
			{ID: "127", IngredientName: "bread", SubstituteName: "portobello caps", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Great for burger buns"},
		},
	},
	{
		Key: "sugar",
		Entries: []Substitution{
			{ID: "130", IngredientName: "sugar", SubstituteName: "stevia", ConversionRatio: 0.1, DietaryTags: []string{"keto"}, Notes: "Much sweeter, use 1/10 amount"},
			{ID: "131", IngredientName: "sugar", SubstituteName: "monk fruit sweetener", ConversionRatio: 0.5, DietaryTags: []string{"keto"}, Notes: "Zero calorie, use half amount"},
			{ID: "132", IngredientName: "sugar", SubstituteName: "honey", ConversionRatio: 0.75, DietaryTags: []string{"vegetarian"}, Notes: "Use 3/4 amount, adds moisture"},
			{ID: "133", IngredientName: "sugar", SubstituteName: "maple syrup", ConversionRatio: 0.75, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "Use 3/4 amount, adds flavor"},
		},
	},
	{
		Key: "oil",
		Entries: []Substitution{
			{ID: "140", IngredientName: "oil", SubstituteName: "coconut oil", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "High smoke point"},
			{ID: "141", IngredientName: "oil", SubstituteName: "avocado oil", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto"}, Notes: "Highest smoke point, neutral flavor"},
			{ID: "142", IngredientName: "oil", SubstituteName: "applesauce", ConversionRatio: 0.5, DietaryTags: []string{"vegan", "vegetarian"}, Notes: "For baking, use half amount"},
		},
	},
	{
		Key: "potato",
		Entries: []Substitution{
			{ID: "150", IngredientName: "potato", SubstituteName: "cauliflower", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Low carb, similar texture when mashed"},
			{ID: "151", IngredientName: "potato", SubstituteName: "turnips", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Lower carb, slightly bitter"},
			{ID: "152", IngredientName: "potato", SubstituteName: "celery root", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Earthy flavor, creamy when mashed"},
		},
	},
	{
		Key: "tomato",
		Entries: []Substitution{
			{ID: "160", IngredientName: "tomato", SubstituteName: "red bell pepper", ConversionRatio: 1.0, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "Sweeter, similar color"},
			{ID: "161", IngredientName: "tomato", SubstituteName: "sun-dried tomatoes", ConversionRatio: 0.5, DietaryTags: []string{"vegan", "vegetarian", "keto", "gluten-free"}, Notes: "More intense flavor, use less"},
		},
	},
}
