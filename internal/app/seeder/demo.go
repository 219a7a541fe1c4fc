package seeder

import "github.com/heartmarshall/recipebox-backend/internal/domain"

type demoUser struct {
	FirstName string
	LastName  string
	Email     string
	Role      domain.UserRole
}

type demoRecipe struct {
	Title        string
	Description  string
	Category     string
	Rating       float64
	Ingredients  []string
	Instructions []string
	Tags         []string
	Difficulty   domain.Difficulty
}

const adminEmail = "admin@example.com"

var demoUsers = []demoUser{
	{FirstName: "System", LastName: "Admin", Email: adminEmail, Role: domain.UserRoleAdmin},
	{FirstName: "Maya", LastName: "Patel", Email: "maya@example.com", Role: domain.UserRoleUser},
	{FirstName: "Ethan", LastName: "Nguyen", Email: "ethan@example.com", Role: domain.UserRoleUser},
	{FirstName: "Liam", LastName: "Garcia", Email: "liam@example.com", Role: domain.UserRoleUser},
}

var demoCategories = []string{
	"Breakfast", "Lunch", "Dinner", "Snack", "Dessert", "Vegetarian", "Vegan", "Mediterranean",
}

var demoRecipes = []demoRecipe{
	{
		Title:        "Mediterranean Chickpea Bowl",
		Description:  "Fresh veggies, chickpeas, and a lemon herb dressing.",
		Category:     "Mediterranean",
		Rating:       5,
		Ingredients:  []string{"chickpeas", "cucumber", "tomato", "olive oil", "lemon"},
		Instructions: []string{"Prep veggies", "Mix dressing", "Combine and serve"},
		Tags:         []string{"healthy", "quick"},
		Difficulty:   domain.DifficultyEasy,
	},
	{
		Title:        "Creamy Mushroom Pasta",
		Description:  "Silky mushroom sauce tossed with pasta.",
		Category:     "Dinner",
		Rating:       4,
		Ingredients:  []string{"mushrooms", "garlic", "cream", "pasta"},
		Instructions: []string{"Saute mushrooms", "Add cream", "Toss pasta"},
		Tags:         []string{"comfort", "italian"},
		Difficulty:   domain.DifficultyMedium,
	},
	{
		Title:        "Berry Overnight Oats",
		Description:  "Make-ahead oats with berries and yogurt.",
		Category:     "Breakfast",
		Rating:       4,
		Ingredients:  []string{"oats", "milk", "berries", "yogurt"},
		Instructions: []string{"Mix ingredients", "Chill overnight", "Serve"},
		Tags:         []string{"meal-prep"},
		Difficulty:   domain.DifficultyEasy,
	},
	{
		Title:        "Vegan Buddha Bowl",
		Description:  "Roasted veggies, quinoa, and tahini dressing.",
		Category:     "Vegan",
		Rating:       5,
		Ingredients:  []string{"quinoa", "sweet potato", "broccoli", "tahini"},
		Instructions: []string{"Roast veggies", "Cook quinoa", "Assemble bowl"},
		Tags:         []string{"vegan", "gluten-free"},
		Difficulty:   domain.DifficultyEasy,
	},
	{
		Title:        "Dark Chocolate Brownies",
		Description:  "Fudgy brownies with a rich chocolate flavor.",
		Category:     "Dessert",
		Rating:       5,
		Ingredients:  []string{"cocoa", "flour", "eggs", "butter"},
		Instructions: []string{"Mix batter", "Bake", "Cool and slice"},
		Tags:         []string{"dessert"},
		Difficulty:   domain.DifficultyEasy,
	},
	{
		Title:        "Quick Avocado Toast",
		Description:  "Smashed avocado on toasted sourdough.",
		Category:     "Snack",
		Rating:       3,
		Ingredients:  []string{"bread", "avocado", "salt", "pepper"},
		Instructions: []string{"Toast bread", "Mash avocado", "Assemble"},
		Tags:         []string{"snack", "quick"},
		Difficulty:   domain.DifficultyEasy,
	},
}
