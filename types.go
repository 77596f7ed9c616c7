package bistro

type (
	IDish interface {
		Name() string
		Ingredients() []Ingredient
		DietaryAccommodations(request DietaryRequest)
	}
	IEventSink interface {
		Emit(event Event)
	}
	IStation interface {
		Name() string
		Dishes() []IDish
		IngredientsStock() []Ingredient
		CanCompleteOrder(dishName string) bool
		PrepareDish(dishName string) bool
	}
	IManager interface {
		AddStation(station *KitchenStation) bool
		RemoveStation(name string) bool
		FindStation(name string) *KitchenStation
		MoveStationToFront(name string) bool
		MergeStations(name1, name2 string) bool
		AssignDishToStation(name string, dish IDish) bool
		ReplenishIngredientAtStation(name string, ingredient Ingredient) bool
		CanCompleteOrder(dishName string) bool
		PrepareDishAtStation(name, dishName string) bool
		AddBackupIngredient(ingredient Ingredient) bool
		ReplenishStationIngredientFromBackup(stationName, ingredientName string, quantity int) bool
		AddDishToQueue(dish IDish)
		AddDishToQueueWithRequest(dish IDish, request DietaryRequest)
		PrepareNextDish() bool
		ProcessAllDishes()
	}
	Ingredient struct {
		Name             string  `yaml:"name"`
		Quantity         int     `yaml:"quantity"`
		RequiredQuantity int     `yaml:"required_quantity"`
		Price            float64 `yaml:"price"`
	}
)

var (
	_ IStation = (*KitchenStation)(nil)
	_ IManager = (*StationManager)(nil)
	_ IDish    = (*Dish)(nil)
)
