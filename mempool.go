package lsystem

const defaultBufferCapacity = 64

// bufferPool holds the two generation buffers of a producer. The front
// buffer is the current generation; a rewrite pass appends into the back
// buffer and then swaps them, so the backing arrays are reused across passes.
type bufferPool[T any] struct {
	front []T
	back  []T
}

func newBufferPool[T any](capacity int) *bufferPool[T] {
	if capacity < defaultBufferCapacity {
		capacity = defaultBufferCapacity
	}
	return &bufferPool[T]{
		front: make([]T, 0, capacity),
		back:  make([]T, 0, capacity),
	}
}

func (m *bufferPool[T]) active() []T {
	return m.front
}

func (m *bufferPool[T]) load(seq []T) {
	m.front = append(m.front[:0], seq...)
}

// resetWritingHead empties the back buffer, keeping its capacity.
func (m *bufferPool[T]) resetWritingHead() {
	clear(m.back)
	m.back = m.back[:0]
}

func (m *bufferPool[T]) appendSlice(seq []T) {
	m.back = append(m.back, seq...)
}

func (m *bufferPool[T]) swap() {
	m.front, m.back = m.back, m.front
}
