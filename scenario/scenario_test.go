package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-preform/bistro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golden(t *testing.T) []string {
	t.Helper()
	raw, err := os.ReadFile("../testdata/demo_pass.golden")
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func TestDemoPass(t *testing.T) {
	m, err := Demo().Build()
	require.NoError(t, err)
	sink := &bistro.SinkForTest{}
	m.SetSink(sink)
	m.ProcessAllDishes()
	assert.Equal(t, golden(t), sink.Lines())
	assert.Equal(t, 2, m.QueueLength())
}

func TestDemoSharesGrilledChicken(t *testing.T) {
	m, err := Demo().Build()
	require.NoError(t, err)
	grill := m.FindStation("Grill Station").Dishes()
	oven := m.FindStation("Oven Station").Dishes()
	require.Len(t, grill, 1)
	require.Len(t, oven, 1)
	assert.Same(t, grill[0], oven[0])
}

func TestRoundTripYAML(t *testing.T) {
	raw, err := Demo().Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)
	sink := &bistro.SinkForTest{}
	m.SetSink(sink)
	m.ProcessAllDishes()
	assert.Equal(t, golden(t), sink.Lines())
}

const carbonara = `
backup:
  - {name: Pasta, quantity: 4}
dishes:
  - name: Carbonara
    cuisine: Italian
    prep_time: 15
    price: 12.5
    ingredients:
      - {name: Pasta, quantity: 1, required_quantity: 1}
      - {name: Pancetta, quantity: 1, required_quantity: 1}
    exclude:
      - {ingredient: Pancetta, when: [vegetarian]}
stations:
  - name: Pasta Station
    stock:
      - {name: Pasta, quantity: 1}
    dishes: [Carbonara]
queue:
  - dish: Carbonara
    dietary: [Vegan, gluten-free]
`

func TestParseWithDietaryRequest(t *testing.T) {
	s, err := Parse([]byte(carbonara))
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)

	queue := m.DishQueue()
	require.Len(t, queue, 1)
	dish := queue[0].(*bistro.Dish)
	assert.Equal(t, bistro.CuisineItalian, dish.Cuisine())
	assert.Equal(t, 15, dish.PrepTime())
	assert.Equal(t, []bistro.Ingredient{{Name: "Pasta", Quantity: 1, RequiredQuantity: 1}}, dish.Ingredients())
	assert.Equal(t, bistro.DietaryRequest{Vegan: true, GlutenFree: true}, dish.Accommodations())
	assert.True(t, m.PrepareNextDish())
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		s    Scenario
		err  error
	}{
		{"station dish", Scenario{Stations: []Station{{Name: "A", Dishes: []string{"Ghost"}}}}, ErrUnknownDish},
		{"queue dish", Scenario{Queue: []Order{{Dish: "Ghost"}}}, ErrUnknownDish},
		{"duplicate station", Scenario{Stations: []Station{{Name: "A"}, {Name: "A"}}}, ErrDuplicateStation},
		{"duplicate dish", Scenario{Dishes: []Dish{{Name: "X"}, {Name: "X"}}}, ErrDuplicateDish},
		{"cuisine", Scenario{Dishes: []Dish{{Name: "X", Cuisine: "lunar"}}}, bistro.ErrUnknownCuisine},
		{"dietary", Scenario{Dishes: []Dish{{Name: "X"}}, Queue: []Order{{Dish: "X", Dietary: []string{"keto"}}}}, bistro.ErrUnknownDietaryRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.s.Build()
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("stations: {"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
