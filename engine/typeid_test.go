package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, Type(0), TypeOf(nil))
	assert.Equal(t, TypeOf(1), TypeOf(2), "same dynamic type hashes the same regardless of value")
	assert.NotEqual(t, TypeOf(1), TypeOf("1"))
	assert.Equal(t, TypeOf(0), TypeOfT[int]())
}
