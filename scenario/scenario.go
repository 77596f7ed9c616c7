// Package scenario describes a bistro setup (stations, dishes, backup pool and queue)
// and builds a ready StationManager from it.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-preform/bistro"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownDish      = errors.New("unknown dish")
	ErrDuplicateStation = errors.New("duplicate station")
	ErrDuplicateDish    = errors.New("duplicate dish")
)

type (
	Scenario struct {
		Backup   []bistro.Ingredient `yaml:"backup"`
		Dishes   []Dish              `yaml:"dishes"`
		Stations []Station           `yaml:"stations"`
		Queue    []Order             `yaml:"queue"`
	}
	Dish struct {
		Name        string              `yaml:"name"`
		PrepTime    int                 `yaml:"prep_time"`
		Price       float64             `yaml:"price"`
		Cuisine     string              `yaml:"cuisine"`
		Ingredients []bistro.Ingredient `yaml:"ingredients"`
		Exclude     []Exclusion         `yaml:"exclude"`
	}
	Exclusion struct {
		Ingredient string   `yaml:"ingredient"`
		When       []string `yaml:"when"`
	}
	Station struct {
		Name   string              `yaml:"name"`
		Stock  []bistro.Ingredient `yaml:"stock"`
		Dishes []string            `yaml:"dishes"`
	}
	Order struct {
		Dish    string   `yaml:"dish"`
		Dietary []string `yaml:"dietary"`
	}
)

func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}

func (s Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Build creates the dishes, stations, backup pool and queue in file order.
// The returned manager still uses its default sink and logger.
func (s Scenario) Build() (*bistro.StationManager, error) {
	var (
		m      = bistro.NewStationManager()
		dishes = map[string]*bistro.Dish{}
	)
	for _, d := range s.Dishes {
		if _, ok := dishes[d.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDish, d.Name)
		}
		dish, err := d.build()
		if err != nil {
			return nil, err
		}
		dishes[d.Name] = dish
	}
	for _, st := range s.Stations {
		if m.FindStation(st.Name) != nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStation, st.Name)
		}
		station := bistro.NewKitchenStation(st.Name)
		for _, ing := range st.Stock {
			station.Replenish(ing)
		}
		m.AddStation(station)
		for _, name := range st.Dishes {
			dish, ok := dishes[name]
			if !ok {
				return nil, fmt.Errorf("station %q: %w: %q", st.Name, ErrUnknownDish, name)
			}
			m.AssignDishToStation(st.Name, dish)
		}
	}
	for _, ing := range s.Backup {
		m.AddBackupIngredient(ing)
	}
	for _, o := range s.Queue {
		dish, ok := dishes[o.Dish]
		if !ok {
			return nil, fmt.Errorf("queue: %w: %q", ErrUnknownDish, o.Dish)
		}
		if len(o.Dietary) == 0 {
			m.AddDishToQueue(dish)
			continue
		}
		req, err := bistro.ParseDietaryRequest(o.Dietary...)
		if err != nil {
			return nil, fmt.Errorf("queue %q: %w", o.Dish, err)
		}
		m.AddDishToQueueWithRequest(dish, req)
	}
	return m, nil
}

func (d Dish) build() (*bistro.Dish, error) {
	cuisine, err := bistro.ParseCuisineType(d.Cuisine)
	if err != nil {
		return nil, fmt.Errorf("dish %q: %w", d.Name, err)
	}
	dish := bistro.NewDish(d.Name, d.Ingredients...).
		SetPrepTime(d.PrepTime).
		SetPrice(d.Price).
		SetCuisine(cuisine)
	for _, ex := range d.Exclude {
		when, err := bistro.ParseDietaryRequest(ex.When...)
		if err != nil {
			return nil, fmt.Errorf("dish %q: %w", d.Name, err)
		}
		dish.Exclude(ex.Ingredient, when)
	}
	return dish, nil
}
