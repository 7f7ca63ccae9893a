package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlled(t *testing.T) {
	var c Controlled[bool]

	assert.False(t, c.Pinned())
	assert.True(t, c.Resolve(true))

	c.Pin(false)
	assert.True(t, c.Pinned())
	assert.False(t, c.Resolve(true))

	c.Release()
	assert.False(t, c.Pinned())
	assert.True(t, c.Resolve(true))
}
