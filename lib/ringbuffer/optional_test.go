package ringbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ringkit/ringkit/lib/ringbuffer"
)

func TestOptional(t *testing.T) {
	some := ringbuffer.Some(0)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, some.OrElse(7))
	assert.Equal(t, "0", some.String())

	none := ringbuffer.None[int]()
	v, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 7, none.OrElse(7))
	assert.Equal(t, "<none>", none.String())
}
