package stringMap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Kind     string `map:"kind"`
	Station  string `map:"station,omitempty"`
	Quantity int
	Tags     []string `map:"tags,omitempty"`
	Secret   string   `map:"-"`
	hidden   string
}

func TestFromStruct(t *testing.T) {
	m := FromStruct(sample{Kind: "prepared", Quantity: 3, Tags: []string{"a"}, Secret: "x", hidden: "y"})
	assert.Equal(t, map[string]string{
		"kind":     "prepared",
		"quantity": "3",
		"tags":     `["a"]`,
	}, m)
	assert.Equal(t, []string{"kind", "quantity", "tags"}, Keys(m))
}

func TestFromStructPointerAndNil(t *testing.T) {
	assert.Equal(t, map[string]string{"kind": "k", "station": "s", "quantity": "0"}, FromStruct(&sample{Kind: "k", Station: "s"}))
	assert.Empty(t, FromStruct(nil))
	assert.Empty(t, FromStruct((*sample)(nil)))
	assert.Empty(t, FromStruct(42))
}
