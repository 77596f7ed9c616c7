package scenario

import "github.com/go-preform/bistro"

// Demo is the five station service: every station holds one dish,
// Seafood and Grill start with empty shelves and Beef Wellington is assigned nowhere.
func Demo() *Scenario {
	var (
		pasta   = bistro.Ingredient{Name: "Pasta", Quantity: 1, RequiredQuantity: 2, Price: 6.99}
		salad   = bistro.Ingredient{Name: "Salad", Quantity: 2, RequiredQuantity: 1, Price: 3.99}
		seafood = bistro.Ingredient{Name: "Seafood", Quantity: 1, RequiredQuantity: 2, Price: 4.99}
		grill   = bistro.Ingredient{Name: "Grill", Quantity: 2, RequiredQuantity: 1, Price: 4.99}
		oven    = bistro.Ingredient{Name: "Oven", Quantity: 2, RequiredQuantity: 1, Price: 2.99}
		course  = func(name string, ing bistro.Ingredient) Dish {
			return Dish{Name: name, PrepTime: 1, Price: 1.11, Cuisine: "italian", Ingredients: []bistro.Ingredient{ing}}
		}
	)
	return &Scenario{
		Backup: []bistro.Ingredient{pasta, salad, oven},
		Dishes: []Dish{
			course("Spaghetti Bolognese", pasta),
			course("Vegan Salad", salad),
			course("Seafood Paella", seafood),
			course("Grilled Chicken", grill),
			course("Beef Wellington", oven),
		},
		Stations: []Station{
			{Name: "Pasta Station", Stock: []bistro.Ingredient{pasta}, Dishes: []string{"Spaghetti Bolognese"}},
			{Name: "Salad Station", Stock: []bistro.Ingredient{salad}, Dishes: []string{"Vegan Salad"}},
			{Name: "Seafood Station", Dishes: []string{"Seafood Paella"}},
			{Name: "Grill Station", Dishes: []string{"Grilled Chicken"}},
			{Name: "Oven Station", Stock: []bistro.Ingredient{grill}, Dishes: []string{"Grilled Chicken"}},
		},
		Queue: []Order{
			{Dish: "Spaghetti Bolognese"},
			{Dish: "Vegan Salad"},
			{Dish: "Seafood Paella"},
			{Dish: "Grilled Chicken"},
			{Dish: "Beef Wellington"},
		},
	}
}
