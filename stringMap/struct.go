package stringMap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

// FromStruct flattens the exported fields of s into strings keyed by the `map` tag,
// or by the lower camel field name when untagged. ",omitempty" skips zero values and "-" skips the field.
func FromStruct(s any) map[string]string {
	if s == nil {
		return map[string]string{}
	}
	var (
		m        = map[string]string{}
		v        = reflect.ValueOf(s)
		vT       reflect.Type
		vF       reflect.StructField
		jsonData []byte
	)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return m
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return m
	}
	vT = v.Type()
	for i, l := 0, vT.NumField(); i < l; i++ {
		vF = vT.Field(i)
		if !vF.IsExported() || vF.Anonymous {
			continue
		}
		key, omitEmpty := parseTag(vF)
		if key == "-" || omitEmpty && v.Field(i).IsZero() {
			continue
		}
		switch vF.Type.Kind() {
		case reflect.Struct, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Array:
			jsonData, _ = json.Marshal(v.Field(i).Interface())
			m[key] = string(jsonData)
		case reflect.String:
			m[key] = v.Field(i).String()
		default:
			m[key] = fmt.Sprintf("%v", v.Field(i).Interface())
		}
	}
	return m
}

func parseTag(f reflect.StructField) (key string, omitEmpty bool) {
	tag, ok := f.Tag.Lookup("map")
	if !ok {
		return strcase.ToLowerCamel(f.Name), false
	}
	parts := strings.Split(tag, ",")
	key = parts[0]
	if key == "" {
		key = strcase.ToLowerCamel(f.Name)
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return
}

// Keys returns the keys of m sorted, for deterministic attribute order.
func Keys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
