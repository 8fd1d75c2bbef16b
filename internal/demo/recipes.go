package demo

import "platechat/internal/domain"

// Canned recipes. Each is a complete, valid Recipe literal — no parsing
// step between here and the store. IDs are stable slugs so saving the same
// demo recipe twice stays a no-op.

func vegetableStirFry() (string, *domain.Recipe) {
	text := "Here's a favorite of mine for exactly that — a fast, crunchy vegetable " +
		"stir fry. The secret is a screaming hot pan and not overcrowding it."
	return text, &domain.Recipe{
		ID:          "demo-vegetable-stir-fry",
		Name:        "Vegetable Stir Fry",
		Region:      domain.RegionChinese,
		Cuisine:     "Chinese",
		Description: "Fast, crunchy, and customizable. Everything cut before the pan goes on.",
		PrepTime:    "15 minutes",
		CookTime:    "10 minutes",
		Servings:    2,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []domain.Ingredient{
			{Name: "broccoli florets", Amount: "2", Unit: "cups"},
			{Name: "bell pepper", Amount: "1", Unit: "", Notes: "sliced into strips"},
			{Name: "carrot", Amount: "1", Unit: "", Notes: "julienned"},
			{Name: "snap peas", Amount: "1", Unit: "cup"},
			{Name: "garlic", Amount: "3", Unit: "cloves", Notes: "minced"},
			{Name: "fresh ginger", Amount: "1", Unit: "tbsp", Notes: "grated"},
			{Name: "soy sauce", Amount: "2", Unit: "tbsp"},
			{Name: "sesame oil", Amount: "1", Unit: "tbsp"},
			{Name: "vegetable oil", Amount: "2", Unit: "tbsp"},
			{Name: "cooked rice", Amount: "2", Unit: "cups", Notes: "for serving"},
		},
		Instructions: []string{
			"Prep all vegetables before anything touches heat. Mince the garlic, grate the ginger.",
			"Mix soy sauce, sesame oil, and 2 tablespoons of water. Set aside.",
			"Heat the vegetable oil in a wok on HIGH until it just starts to smoke.",
			"Add broccoli and carrots first — they take longest. Stir-fry for 2 minutes.",
			"Add bell pepper and snap peas. Another 2 minutes. Let things get some char.",
			"Push the vegetables aside, add garlic and ginger to the center for 30 seconds, then toss everything together.",
			"Pour in the sauce, toss to coat, and cook 30 more seconds. Serve over rice immediately.",
		},
		Tips: []string{
			"Do not stir constantly — charred edges are flavor.",
			"Any crunchy vegetable works; keep the total volume the same.",
		},
		Tags: []string{"vegetarian", "vegan", "quick", "healthy"},
	}
}

func chickenAlfredo() (string, *domain.Recipe) {
	text := "You can't go wrong with a creamy chicken alfredo — rich, indulgent, " +
		"and not from a jar. Here's how I make it."
	return text, &domain.Recipe{
		ID:          "demo-chicken-alfredo",
		Name:        "Chicken Alfredo",
		Region:      domain.RegionItalian,
		Cuisine:     "Italian-American",
		Description: "Creamy spaghetti alfredo with pan-seared chicken.",
		PrepTime:    "10 minutes",
		CookTime:    "25 minutes",
		Servings:    2,
		Difficulty:  domain.DifficultyMedium,
		Ingredients: []domain.Ingredient{
			{Name: "spaghetti", Amount: "250", Unit: "g"},
			{Name: "chicken breast", Amount: "2", Unit: "", Notes: "pounded to even thickness"},
			{Name: "heavy cream", Amount: "1", Unit: "cup"},
			{Name: "parmesan cheese", Amount: "1", Unit: "cup", Notes: "freshly grated"},
			{Name: "butter", Amount: "3", Unit: "tbsp"},
			{Name: "garlic", Amount: "4", Unit: "cloves", Notes: "minced"},
			{Name: "olive oil", Amount: "1", Unit: "tbsp"},
			{Name: "salt", Amount: "to taste", Unit: ""},
			{Name: "black pepper", Amount: "to taste", Unit: ""},
		},
		Instructions: []string{
			"Bring a large pot of salted water to a boil. It should taste like the sea.",
			"Season the chicken with salt and pepper. Sear in olive oil over medium-high, about 6 minutes per side, until golden and cooked through. Rest, then slice.",
			"Cook the spaghetti until al dente. Reserve a cup of pasta water before draining.",
			"In the same skillet, melt the butter and cook the garlic for 1 minute until fragrant. Burnt garlic ruins everything.",
			"Stir in the cream and simmer gently for 3 minutes until slightly thickened.",
			"Off the heat, stir in the parmesan gradually until smooth. Loosen with pasta water if needed.",
			"Toss the pasta in the sauce, top with sliced chicken, and serve immediately.",
		},
		Tips: []string{
			"Alfredo does not reheat well — eat it now.",
			"Grate the cheese yourself; pre-shredded won't melt smoothly.",
		},
		Tags: []string{"pasta", "chicken", "comfort"},
	}
}

func blackBeanTacos() (string, *domain.Recipe) {
	text := "Taco night, solved. These black bean tacos come together in twenty " +
		"minutes and nobody misses the meat."
	return text, &domain.Recipe{
		ID:          "demo-black-bean-tacos",
		Name:        "Black Bean Tacos",
		Region:      domain.RegionMexican,
		Cuisine:     "Mexican",
		Description: "Smoky spiced black beans in warm tortillas with quick toppings.",
		PrepTime:    "10 minutes",
		CookTime:    "10 minutes",
		Servings:    4,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []domain.Ingredient{
			{Name: "black beans", Amount: "2", Unit: "cans", Notes: "drained and rinsed"},
			{Name: "small tortillas", Amount: "8", Unit: ""},
			{Name: "onion", Amount: "1", Unit: "", Notes: "diced"},
			{Name: "garlic", Amount: "2", Unit: "cloves", Notes: "minced"},
			{Name: "ground cumin", Amount: "1", Unit: "tsp"},
			{Name: "smoked paprika", Amount: "1", Unit: "tsp"},
			{Name: "lime", Amount: "1", Unit: "", Notes: "juiced"},
			{Name: "avocado", Amount: "1", Unit: "", Notes: "sliced"},
			{Name: "fresh cilantro", Amount: "1/2", Unit: "cup", Notes: "chopped"},
			{Name: "olive oil", Amount: "1", Unit: "tbsp"},
		},
		Instructions: []string{
			"Soften the onion in olive oil over medium heat, about 4 minutes.",
			"Add garlic, cumin, and paprika. Cook 30 seconds until fragrant.",
			"Add the beans with a splash of water. Simmer 5 minutes, mashing some beans against the pan.",
			"Finish with lime juice and season with salt.",
			"Warm the tortillas in a dry pan.",
			"Fill with beans and top with avocado and cilantro.",
		},
		Tips: []string{
			"Char the tortillas directly over a gas flame if you have one.",
		},
		Tags: []string{"vegetarian", "quick", "beans"},
	}
}

func shakshuka() (string, *domain.Recipe) {
	text := "For a breakfast worth getting up for, make shakshuka — eggs poached " +
		"in a spiced tomato sauce, straight from the pan."
	return text, &domain.Recipe{
		ID:          "demo-shakshuka",
		Name:        "Shakshuka",
		Region:      domain.RegionMiddleEastern,
		Cuisine:     "Middle Eastern",
		Description: "Eggs poached in a smoky pepper and tomato sauce. One pan, big payoff.",
		PrepTime:    "10 minutes",
		CookTime:    "25 minutes",
		Servings:    2,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []domain.Ingredient{
			{Name: "eggs", Amount: "4", Unit: ""},
			{Name: "canned crushed tomatoes", Amount: "400", Unit: "g"},
			{Name: "red bell pepper", Amount: "1", Unit: "", Notes: "diced"},
			{Name: "onion", Amount: "1", Unit: "", Notes: "diced"},
			{Name: "garlic", Amount: "3", Unit: "cloves", Notes: "minced"},
			{Name: "ground cumin", Amount: "1", Unit: "tsp"},
			{Name: "smoked paprika", Amount: "1", Unit: "tsp"},
			{Name: "olive oil", Amount: "2", Unit: "tbsp"},
			{Name: "crusty bread", Amount: "to serve", Unit: ""},
		},
		Instructions: []string{
			"Cook the onion and pepper in olive oil over medium heat until soft, about 8 minutes.",
			"Add garlic and spices, cook 1 minute.",
			"Pour in the tomatoes, season, and simmer 10 minutes until thickened.",
			"Make four wells in the sauce and crack an egg into each.",
			"Cover and cook 6 to 8 minutes until the whites are set but the yolks still run.",
			"Serve from the pan with bread for mopping.",
		},
		Tips: []string{
			"Take it off the heat a minute early — the eggs keep cooking in the sauce.",
		},
		Tags: []string{"vegetarian", "breakfast", "eggs"},
	}
}

func lentilSoup() (string, *domain.Recipe) {
	text := "Cold day? This red lentil soup is the answer — pantry staples, one pot, " +
		"forty minutes."
	return text, &domain.Recipe{
		ID:          "demo-lentil-soup",
		Name:        "Red Lentil Soup",
		Region:      domain.RegionIndian,
		Cuisine:     "Indian-inspired",
		Description: "A warming, gently spiced lentil soup that tastes like it took all day.",
		PrepTime:    "10 minutes",
		CookTime:    "30 minutes",
		Servings:    4,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []domain.Ingredient{
			{Name: "red lentils", Amount: "1 1/2", Unit: "cups", Notes: "rinsed"},
			{Name: "onion", Amount: "1", Unit: "", Notes: "diced"},
			{Name: "carrot", Amount: "2", Unit: "", Notes: "diced"},
			{Name: "garlic", Amount: "3", Unit: "cloves", Notes: "minced"},
			{Name: "ground cumin", Amount: "2", Unit: "tsp"},
			{Name: "ground turmeric", Amount: "1", Unit: "tsp"},
			{Name: "vegetable stock", Amount: "6", Unit: "cups"},
			{Name: "lemon", Amount: "1", Unit: "", Notes: "juiced"},
			{Name: "olive oil", Amount: "2", Unit: "tbsp"},
		},
		Instructions: []string{
			"Soften the onion and carrot in olive oil over medium heat, about 6 minutes.",
			"Add garlic, cumin, and turmeric. Cook 1 minute.",
			"Add lentils and stock. Bring to a boil, then simmer 25 minutes until the lentils collapse.",
			"Blend half the soup for body, or leave it rustic.",
			"Finish with lemon juice and season generously.",
		},
		Tips: []string{
			"The lemon at the end is not optional — it wakes the whole pot up.",
		},
		Tags: []string{"vegetarian", "vegan", "soup", "healthy"},
	}
}

func chocolateMugCake() (string, *domain.Recipe) {
	text := "Dessert emergency? This chocolate mug cake goes from craving to spoon " +
		"in five minutes."
	return text, &domain.Recipe{
		ID:          "demo-chocolate-mug-cake",
		Name:        "Chocolate Mug Cake",
		Region:      domain.RegionAmerican,
		Cuisine:     "American",
		Description: "A single-serving chocolate cake made in the microwave.",
		PrepTime:    "3 minutes",
		CookTime:    "90 seconds",
		Servings:    1,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []domain.Ingredient{
			{Name: "all-purpose flour", Amount: "4", Unit: "tbsp"},
			{Name: "sugar", Amount: "3", Unit: "tbsp"},
			{Name: "cocoa powder", Amount: "2", Unit: "tbsp"},
			{Name: "milk", Amount: "3", Unit: "tbsp"},
			{Name: "vegetable oil", Amount: "2", Unit: "tbsp"},
			{Name: "baking powder", Amount: "1/4", Unit: "tsp"},
			{Name: "chocolate chips", Amount: "1", Unit: "tbsp", Notes: "optional but correct"},
		},
		Instructions: []string{
			"Whisk the dry ingredients together directly in a large mug.",
			"Stir in milk and oil until no dry pockets remain.",
			"Drop the chocolate chips into the center.",
			"Microwave 70 to 90 seconds. The top should look just set.",
			"Let it stand 1 minute before eating — molten sugar is no joke.",
		},
		Tags: []string{"dessert", "quick", "chocolate"},
	}
}
