package list

import "github.com/denismitr/stldemo/utils"

type (
	// List is an ordered, index accessible, append only sequence.
	// Insertion order is preserved and is also the iteration order.
	List[T any] struct {
		items []T
	}

	ForEachFn[T any] func(idx int, item T)
)

func New[T any](capacity ...int) *List[T] {
	c := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		c = capacity[0]
	}

	return &List[T]{items: make([]T, 0, c)}
}

// From copies items into a new list
func From[T any](items []T) *List[T] {
	l := New[T](len(items))
	l.items = append(l.items, items...)
	return l
}

func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) At(idx int) (T, bool) {
	if idx < 0 || idx >= len(l.items) {
		return utils.GetZero[T](), false
	}

	return l.items[idx], true
}

// Items returns a copy of the underlying items
func (l *List[T]) Items() []T {
	result := make([]T, len(l.items))
	copy(result, l.items)
	return result
}

func (l *List[T]) ForEach(f ForEachFn[T]) {
	for i, item := range l.items {
		f(i, item)
	}
}
