package bistro

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// normalizeName folds "gluten-free", "Gluten Free" and "GlutenFree" to the same key.
func normalizeName(name string) string {
	return strcase.ToSnake(strings.Trim(name, " "))
}

func Ternary[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}

func findIngredient(list []Ingredient, name string) int {
	for i, ing := range list {
		if ing.Name == name {
			return i
		}
	}
	return -1
}

// isNilDish also catches a nil pointer wrapped in a non-nil IDish.
func isNilDish(dish IDish) bool {
	if dish == nil {
		return true
	}
	v := reflect.ValueOf(dish)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
