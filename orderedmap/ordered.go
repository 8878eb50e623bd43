package orderedmap

import (
	"context"

	"github.com/denismitr/stldemo/utils"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const degree = 32

type (
	// OrderedMap keeps its keys unique and sorted in ascending order.
	// It is not safe for concurrent writes.
	OrderedMap[K constraints.Ordered, V any] struct {
		tree *btree.BTreeG[utils.Pair[K, V]]
	}

	FilterFn[K constraints.Ordered, V any]       func(key K, value V, order int) bool
	ForEachFn[K constraints.Ordered, V any]      func(key K, value V, order int)
	ForEachUntilFn[K constraints.Ordered, V any] func(key K, value V, order int) bool
	TransformerFn[K constraints.Ordered, V any]  func(key K, value V, order int) V
)

func New[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		tree: btree.NewG[utils.Pair[K, V]](degree, lessByKey[K, V]),
	}
}

func lessByKey[K constraints.Ordered, V any](a, b utils.Pair[K, V]) bool {
	return a.Key < b.Key
}

func probe[K constraints.Ordered, V any](key K) utils.Pair[K, V] {
	return utils.Pair[K, V]{Key: key}
}

// Set creates the entry or overwrites the value of an existing one
func (om *OrderedMap[K, V]) Set(key K, value V) {
	om.tree.ReplaceOrInsert(utils.Pair[K, V]{Key: key, Value: value})
}

// SetNX never overwrites an existing key
func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if om.tree.Has(probe[K, V](key)) {
		return false
	}

	om.tree.ReplaceOrInsert(utils.Pair[K, V]{Key: key, Value: value})
	return true
}

func (om *OrderedMap[K, V]) Find(key K) (utils.Pair[K, V], bool) {
	return om.tree.Get(probe[K, V](key))
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	p, found := om.tree.Get(probe[K, V](key))
	if !found {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	return om.tree.Has(probe[K, V](key))
}

// HasRemove removes the key if it is present, a missing key is a no-op
func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	p, removed := om.tree.Delete(probe[K, V](key))
	if !removed {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}

func (om *OrderedMap[K, V]) Remove(key K) V {
	v, _ := om.HasRemove(key)
	return v
}

func (om *OrderedMap[K, V]) Len() int {
	return om.tree.Len()
}

// Keys returns all keys in ascending order
func (om *OrderedMap[K, V]) Keys() []K {
	return om.KeysIn(utils.AscOrder)
}

func (om *OrderedMap[K, V]) KeysIn(order utils.Order) []K {
	keys := make([]K, 0, om.tree.Len())
	collect := func(p utils.Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	}

	if order == utils.DescOrder {
		om.tree.Descend(collect)
	} else {
		om.tree.Ascend(collect)
	}

	return keys
}

// Pairs lazily streams the entries in ascending key order.
// The channel is closed when the traversal ends or ctx is done.
func (om *OrderedMap[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)

		om.tree.Ascend(func(p utils.Pair[K, V]) bool {
			select {
			case <-ctx.Done():
				return false
			case resultCh <- p:
				return true
			}
		})
	}()

	return resultCh
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	om.tree.Ascend(func(p utils.Pair[K, V]) bool {
		f(p.Key, p.Value, order)
		order++
		return true
	})
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	order := 0
	om.tree.Ascend(func(p utils.Pair[K, V]) bool {
		canGoOn := ff(p.Key, p.Value, order)
		order++
		return canGoOn
	})

	return om
}

func (om *OrderedMap[K, V]) Transform(f TransformerFn[K, V]) *OrderedMap[K, V] {
	result := New[K, V]()
	om.ForEach(func(key K, value V, order int) {
		result.Set(key, f(key, value, order))
	})

	return result
}

func (om *OrderedMap[K, V]) Filter(f FilterFn[K, V]) *OrderedMap[K, V] {
	result := New[K, V]()
	om.ForEach(func(key K, value V, order int) {
		if f(key, value, order) {
			result.Set(key, value)
		}
	})

	return result
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{tree: om.tree.Clone()}
}
