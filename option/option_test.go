package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoneIsZeroValue(t *testing.T) {
	var x Option[int]

	assert.True(t, x.IsNone())
	assert.Equal(t, None[int](), x)
	assert.Panics(t, func() { x.MustGet() })
}

func TestSome(t *testing.T) {
	x := Some(0)

	v, ok := x.Get()
	assert.True(t, ok)
	assert.True(t, x.IsSome())
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, x.MustGet())
}
