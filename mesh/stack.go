package mesh

import "iter"

// stack is a typed insertion-ordered doubly-linked store. Each push
// returns the position handle of the new item, so removal is O(1)
// without searching. Iteration follows insertion order and tolerates
// pushes behind the cursor, which the refinement loops rely on: entities
// appended during a walk are visited by the same walk.
type stack[T any] struct {
	first, last *stackItem[T]
	count       int
}

// stackItem is the position handle recorded on the entity at creation.
type stackItem[T any] struct {
	value      *T
	prev, next *stackItem[T]
	owner      *stack[T]
}

func newStack[T any]() *stack[T] {
	return &stack[T]{}
}

// push appends v and returns its position handle.
func (s *stack[T]) push(v *T) *stackItem[T] {
	it := &stackItem[T]{value: v, owner: s}
	if s.last == nil {
		s.first = it
	} else {
		s.last.next = it
		it.prev = s.last
	}
	s.last = it
	s.count++

	return it
}

// remove unlinks the item. Removing an item that is not on this stack is
// a programming error and panics.
func (s *stack[T]) remove(it *stackItem[T]) {
	if it == nil || it.owner != s {
		panic("mesh: removal of entity that is not on the store")
	}
	if it.prev != nil {
		it.prev.next = it.next
	} else {
		s.first = it.next
	}
	if it.next != nil {
		it.next.prev = it.prev
	} else {
		s.last = it.prev
	}
	it.prev, it.next, it.owner = nil, nil, nil
	s.count--
}

// each yields the stored values in insertion order.
func (s *stack[T]) each() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := s.first; it != nil; it = it.next {
			if !yield(it.value) {
				return
			}
		}
	}
}
