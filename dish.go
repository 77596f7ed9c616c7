package bistro

import (
	"errors"
	"fmt"
	"strings"
)

type CuisineType int

const (
	CuisineOther CuisineType = iota
	CuisineItalian
	CuisineMexican
	CuisineChinese
	CuisineIndian
	CuisineAmerican
	CuisineFrench
)

var (
	cuisineNames = []string{"other", "italian", "mexican", "chinese", "indian", "american", "french"}

	ErrUnknownCuisine        = errors.New("unknown cuisine")
	ErrUnknownDietaryRequest = errors.New("unknown dietary request")
)

func (c CuisineType) String() string {
	if int(c) < 0 || int(c) >= len(cuisineNames) {
		return cuisineNames[CuisineOther]
	}
	return cuisineNames[c]
}

func ParseCuisineType(name string) (CuisineType, error) {
	key := normalizeName(name)
	if key == "" {
		return CuisineOther, nil
	}
	for i, n := range cuisineNames {
		if n == key {
			return CuisineType(i), nil
		}
	}
	return CuisineOther, fmt.Errorf("%w: %q", ErrUnknownCuisine, name)
}

type DietaryRequest struct {
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	NutFree    bool
	LowSodium  bool
	LowSugar   bool
}

// ParseDietaryRequest accepts names like "vegan", "gluten-free" or "LowSodium".
func ParseDietaryRequest(names ...string) (DietaryRequest, error) {
	var r DietaryRequest
	for _, name := range names {
		switch normalizeName(name) {
		case "vegetarian":
			r.Vegetarian = true
		case "vegan":
			r.Vegan = true
		case "gluten_free":
			r.GlutenFree = true
		case "nut_free":
			r.NutFree = true
		case "low_sodium":
			r.LowSodium = true
		case "low_sugar":
			r.LowSugar = true
		default:
			return DietaryRequest{}, fmt.Errorf("%w: %q", ErrUnknownDietaryRequest, name)
		}
	}
	return r, nil
}

func (r DietaryRequest) Merge(o DietaryRequest) DietaryRequest {
	return DietaryRequest{
		Vegetarian: r.Vegetarian || o.Vegetarian,
		Vegan:      r.Vegan || o.Vegan,
		GlutenFree: r.GlutenFree || o.GlutenFree,
		NutFree:    r.NutFree || o.NutFree,
		LowSodium:  r.LowSodium || o.LowSodium,
		LowSugar:   r.LowSugar || o.LowSugar,
	}
}

func (r DietaryRequest) intersects(o DietaryRequest) bool {
	// vegan implies vegetarian
	return (r.Vegetarian || r.Vegan) && o.Vegetarian ||
		r.Vegan && o.Vegan ||
		r.GlutenFree && o.GlutenFree ||
		r.NutFree && o.NutFree ||
		r.LowSodium && o.LowSodium ||
		r.LowSugar && o.LowSugar
}

func (r DietaryRequest) IsZero() bool {
	return r == DietaryRequest{}
}

func (r DietaryRequest) String() string {
	var names []string
	for i, on := range []bool{r.Vegetarian, r.Vegan, r.GlutenFree, r.NutFree, r.LowSodium, r.LowSugar} {
		if on {
			names = append(names, []string{"vegetarian", "vegan", "gluten_free", "nut_free", "low_sodium", "low_sugar"}[i])
		}
	}
	return strings.Join(names, ",")
}

type Dish struct {
	name           string
	ingredients    []Ingredient
	prepTime       int
	price          float64
	cuisine        CuisineType
	accommodations DietaryRequest
	excludedBy     map[string]DietaryRequest
}

func NewDish(name string, ingredients ...Ingredient) *Dish {
	return &Dish{name: name, ingredients: append([]Ingredient(nil), ingredients...)}
}

func (d Dish) Name() string {
	return d.name
}

func (d Dish) Ingredients() []Ingredient {
	return append([]Ingredient(nil), d.ingredients...)
}

func (d Dish) PrepTime() int {
	return d.prepTime
}

func (d Dish) Price() float64 {
	return d.price
}

func (d Dish) Cuisine() CuisineType {
	return d.cuisine
}

func (d Dish) Accommodations() DietaryRequest {
	return d.accommodations
}

func (d *Dish) SetPrepTime(minutes int) *Dish {
	d.prepTime = minutes
	return d
}

func (d *Dish) SetPrice(price float64) *Dish {
	d.price = price
	return d
}

func (d *Dish) SetCuisine(cuisine CuisineType) *Dish {
	d.cuisine = cuisine
	return d
}

// Exclude drops ingredient from the dish when a request matching when is accommodated.
func (d *Dish) Exclude(ingredient string, when DietaryRequest) *Dish {
	if d.excludedBy == nil {
		d.excludedBy = map[string]DietaryRequest{}
	}
	d.excludedBy[ingredient] = d.excludedBy[ingredient].Merge(when)
	return d
}

// DietaryAccommodations records the request and strips the ingredients excluded by it.
// Requests accumulate across calls.
func (d *Dish) DietaryAccommodations(request DietaryRequest) {
	d.accommodations = d.accommodations.Merge(request)
	if len(d.excludedBy) == 0 {
		return
	}
	kept := d.ingredients[:0]
	for _, ing := range d.ingredients {
		if when, ok := d.excludedBy[ing.Name]; ok && request.intersects(when) {
			continue
		}
		kept = append(kept, ing)
	}
	d.ingredients = kept
}
