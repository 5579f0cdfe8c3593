package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string  `validate:"required,min=2"`
	Guests int     `validate:"min=1,max=12"`
	Note   *string `validate:"omitempty,max=5"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Ada", Guests: 2}))

	long := "too long"
	err := Struct(sample{Name: "A", Guests: 20, Note: &long})
	assert.EqualError(t, err, "name: min=2; guests: max=12; note: max=5")
}
