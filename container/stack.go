package container

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// preallocation is capped, larger stacks grow on push up to their capacity
const maxPrealloc = 64

// NewFixedStack returns an empty stack holding at most capacity elements.
func NewFixedStack[T comparable](capacity int) (*FixedStack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &FixedStack[T]{
		vals:     make([]T, 0, min(capacity, maxPrealloc)),
		capacity: capacity,
	}, nil
}

// FixedStack is a LIFO stack bounded by a capacity fixed at construction.
// The zero value has capacity 0: it stays empty and every Push overflows.
// A FixedStack is not safe for concurrent use.
type FixedStack[T comparable] struct {
	vals     []T // bottom to top
	capacity int
}

func (s *FixedStack[T]) Push(v T) error {
	if s.IsFull() {
		slog.Debug("push rejected", slog.Int("capacity", s.capacity))

		return fmt.Errorf("%w: cannot push element, capacity %d", ErrStackOverflow, s.capacity)
	}

	s.vals = append(s.vals, v)

	return nil
}

func (s *FixedStack[T]) Pop() (zero T, _ error) {
	if s.IsEmpty() {
		slog.Debug("pop rejected", slog.Int("capacity", s.capacity))

		return zero, fmt.Errorf("%w: cannot pop element", ErrStackUnderflow)
	}

	last := len(s.vals) - 1
	top := s.vals[last]

	s.vals[last] = zero
	s.vals = s.vals[:last]

	return top, nil
}

// Peek returns the top element, or None when the stack is empty.
func (s *FixedStack[T]) Peek() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}

	return mo.Some(s.vals[len(s.vals)-1])
}

func (s *FixedStack[T]) IsEmpty() bool {
	return len(s.vals) == 0
}

func (s *FixedStack[T]) IsFull() bool {
	return len(s.vals) >= s.capacity
}

// Search returns the index of the first element equal to v counting from
// the bottom, or -1.
func (s *FixedStack[T]) Search(v T) int {
	return lo.IndexOf(s.vals, v)
}

func (s *FixedStack[T]) Len() int {
	return len(s.vals)
}

func (s *FixedStack[T]) Cap() int {
	return s.capacity
}

// Values returns a bottom to top copy of the elements.
func (s *FixedStack[T]) Values() []T {
	ret := make([]T, len(s.vals))
	copy(ret, s.vals)

	return ret
}
