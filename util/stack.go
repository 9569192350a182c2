package util

// Stack remembers which states to go back to. The zero value is empty and
// ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item. ok is false when the stack was empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}

	idx := len(s.items) - 1
	item = s.items[idx]
	s.items = s.items[:idx]
	return item, true
}

// PopOr is Pop falling back to fallback on an empty stack.
func (s *Stack[T]) PopOr(fallback T) T {
	if item, ok := s.Pop(); ok {
		return item
	}

	return fallback
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
