package bistro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationAssignDish(t *testing.T) {
	s := NewKitchenStation("Grill Station")
	d := NewDish("Steak", Ingredient{Name: "Beef", RequiredQuantity: 1})
	assert.True(t, s.AssignDish(d))
	assert.False(t, s.AssignDish(d))
	assert.False(t, s.AssignDish(NewDish("Steak")))
	assert.False(t, s.AssignDish(nil))
	var missing *Dish
	assert.False(t, s.AssignDish(missing))
	assert.True(t, s.HasDish("Steak"))
	assert.False(t, s.HasDish("steak"))
	assert.Len(t, s.Dishes(), 1)
}

func TestStationReplenishAndRestock(t *testing.T) {
	s := NewKitchenStation("Pasta Station")
	s.Replenish(Ingredient{Name: "Pasta", Quantity: 2, RequiredQuantity: 5, Price: 1.5})
	s.Replenish(Ingredient{Name: "Pasta", Quantity: 3})
	s.Replenish(Ingredient{Name: "Basil", Quantity: 1})
	assert.Equal(t, []Ingredient{
		{Name: "Pasta", Quantity: 5, Price: 1.5},
		{Name: "Basil", Quantity: 1},
	}, s.IngredientsStock())

	assert.True(t, s.Restock("Basil", 4))
	assert.False(t, s.Restock("Garlic", 4))
	basil, ok := s.StockOf("Basil")
	assert.True(t, ok)
	assert.Equal(t, 5, basil)
	_, ok = s.StockOf("Garlic")
	assert.False(t, ok)
}

func TestStationPrepareDish(t *testing.T) {
	s := NewKitchenStation("Salad Station")
	d := NewDish("Caesar",
		Ingredient{Name: "Lettuce", RequiredQuantity: 2},
		Ingredient{Name: "Croutons", RequiredQuantity: 1},
		Ingredient{Name: "Salt"},
	)
	s.AssignDish(d)
	s.Replenish(Ingredient{Name: "Lettuce", Quantity: 3})
	assert.False(t, s.CanCompleteOrder("Caesar"))
	assert.False(t, s.PrepareDish("Caesar"))

	s.Replenish(Ingredient{Name: "Croutons", Quantity: 1})
	assert.True(t, s.CanCompleteOrder("Caesar"))
	assert.True(t, s.PrepareDish("Caesar"))
	assert.Equal(t, []Ingredient{{Name: "Lettuce", Quantity: 1}, {Name: "Croutons", Quantity: 0}}, s.IngredientsStock())

	assert.False(t, s.PrepareDish("Caesar"))
	assert.False(t, s.CanCompleteOrder("Greek"))
}

func TestStationRepeatedIngredientCountsTwice(t *testing.T) {
	s := NewKitchenStation("Oven Station")
	s.AssignDish(NewDish("Double Bake",
		Ingredient{Name: "Dough", RequiredQuantity: 1},
		Ingredient{Name: "Dough", RequiredQuantity: 1},
	))
	s.Replenish(Ingredient{Name: "Dough", Quantity: 1})
	assert.False(t, s.CanCompleteOrder("Double Bake"))
	s.Restock("Dough", 1)
	assert.True(t, s.PrepareDish("Double Bake"))
	dough, _ := s.StockOf("Dough")
	assert.Equal(t, 0, dough)
}

func TestStationSharedDish(t *testing.T) {
	var (
		d     = NewDish("Grilled Chicken", Ingredient{Name: "Grill", RequiredQuantity: 1})
		grill = NewKitchenStation("Grill Station")
		oven  = NewKitchenStation("Oven Station")
	)
	assert.True(t, grill.AssignDish(d))
	assert.True(t, oven.AssignDish(d))
	oven.Replenish(Ingredient{Name: "Grill", Quantity: 1})
	assert.False(t, grill.CanCompleteOrder("Grilled Chicken"))
	assert.True(t, oven.CanCompleteOrder("Grilled Chicken"))
}
