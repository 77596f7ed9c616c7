package bistro

// KitchenStation holds ingredient stock and the dishes it is able to prepare.
// Stock lines keep their first-arrival order and stay in place at zero quantity.
type KitchenStation struct {
	name   string
	dishes []IDish
	stock  []Ingredient
}

func NewKitchenStation(name string) *KitchenStation {
	return &KitchenStation{name: name}
}

func (k KitchenStation) Name() string {
	return k.name
}

func (k KitchenStation) Dishes() []IDish {
	return append([]IDish(nil), k.dishes...)
}

func (k KitchenStation) IngredientsStock() []Ingredient {
	return append([]Ingredient(nil), k.stock...)
}

// StockOf reports the on-hand quantity of an ingredient and whether the station carries it at all.
func (k KitchenStation) StockOf(ingredient string) (int, bool) {
	if i := findIngredient(k.stock, ingredient); i >= 0 {
		return k.stock[i].Quantity, true
	}
	return 0, false
}

// AssignDish refuses nil dishes and names already assigned here.
func (k *KitchenStation) AssignDish(dish IDish) bool {
	if isNilDish(dish) || k.HasDish(dish.Name()) {
		return false
	}
	k.dishes = append(k.dishes, dish)
	return true
}

func (k KitchenStation) HasDish(dishName string) bool {
	return k.dish(dishName) != nil
}

func (k KitchenStation) dish(dishName string) IDish {
	for _, d := range k.dishes {
		if d.Name() == dishName {
			return d
		}
	}
	return nil
}

// Replenish adds to an existing stock line or opens a new one.
func (k *KitchenStation) Replenish(ingredient Ingredient) {
	if i := findIngredient(k.stock, ingredient.Name); i >= 0 {
		k.stock[i].Quantity += ingredient.Quantity
		return
	}
	k.stock = append(k.stock, Ingredient{Name: ingredient.Name, Quantity: ingredient.Quantity, Price: ingredient.Price})
}

// Restock tops up a stock line the station already carries and reports false,
// without opening a new line, when there is none.
func (k *KitchenStation) Restock(ingredient string, quantity int) bool {
	i := findIngredient(k.stock, ingredient)
	if i < 0 {
		return false
	}
	k.stock[i].Quantity += quantity
	return true
}

func (k KitchenStation) CanCompleteOrder(dishName string) bool {
	d := k.dish(dishName)
	if d == nil {
		return false
	}
	for _, need := range requirements(d) {
		have, _ := k.StockOf(need.Name)
		if have < need.RequiredQuantity {
			return false
		}
	}
	return true
}

func (k *KitchenStation) PrepareDish(dishName string) bool {
	if !k.CanCompleteOrder(dishName) {
		return false
	}
	for _, need := range requirements(k.dish(dishName)) {
		k.stock[findIngredient(k.stock, need.Name)].Quantity -= need.RequiredQuantity
	}
	return true
}

// requirements sums the positive required quantities of a dish per ingredient name.
func requirements(d IDish) []Ingredient {
	var res []Ingredient
	for _, ing := range d.Ingredients() {
		if ing.RequiredQuantity <= 0 {
			continue
		}
		if i := findIngredient(res, ing.Name); i >= 0 {
			res[i].RequiredQuantity += ing.RequiredQuantity
		} else {
			res = append(res, Ingredient{Name: ing.Name, RequiredQuantity: ing.RequiredQuantity})
		}
	}
	return res
}
