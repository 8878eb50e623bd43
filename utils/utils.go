package utils

import "fmt"

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Tuple is an unnamed pair of two values, First and Second,
// with no key semantics attached to either of them.
type Tuple[A, B any] struct {
	First  A
	Second B
}

func MakeTuple[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{First: a, Second: b}
}

// String renders the tuple as (first, second)
func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}

func GetZero[T any]() T {
	var result T
	return result
}
