package lsystem

// Set is an unordered collection of symbols.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](symbols ...T) Set[T] {
	s := make(Set[T], len(symbols))
	for _, t := range symbols {
		s.Add(t)
	}
	return s
}

func (s Set[T]) Contains(t T) bool {
	_, exists := s[t]
	return exists
}

func (s Set[T]) Add(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) AsSlice() []T {
	slice := make([]T, 0, len(s))
	for t := range s {
		slice = append(slice, t)
	}
	return slice
}
