package core

// Controlled is a state field that the caller may pin. While pinned, Resolve
// returns the pinned value no matter what the internal copy says; transitions
// keep updating the internal copy and keep emitting notifications either way.
type Controlled[T any] struct {
	value  T
	pinned bool
}

// Pin makes v the authoritative value until Release is called.
func (c *Controlled[T]) Pin(v T) {
	c.value = v
	c.pinned = true
}

func (c *Controlled[T]) Release() {
	var zero T
	c.value = zero
	c.pinned = false
}

func (c *Controlled[T]) Pinned() bool {
	return c.pinned
}

// Resolve picks the value to render: the pinned one if any, else internal.
func (c *Controlled[T]) Resolve(internal T) T {
	if c.pinned {
		return c.value
	}
	return internal
}
