package gtfsfeed

import "container/list"

// index maps keys to values and remembers insertion order. Overwriting a key keeps its
// position; deleting and setting it again moves it to the end.
type index[V any] struct {
	elems map[string]*list.Element
	order *list.List
}

func newIndex[V any]() *index[V] {
	return &index[V]{elems: make(map[string]*list.Element), order: list.New()}
}

func (x *index[V]) set(key string, value V) {
	if elem, ok := x.elems[key]; ok {
		elem.Value = value
		return
	}
	x.elems[key] = x.order.PushBack(value)
}

func (x *index[V]) get(key string) (V, bool) {
	elem, ok := x.elems[key]
	if !ok {
		var zero V
		return zero, false
	}
	return elem.Value.(V), true
}

func (x *index[V]) delete(key string) (V, bool) {
	elem, ok := x.elems[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(x.elems, key)
	x.order.Remove(elem)
	return elem.Value.(V), true
}

func (x *index[V]) len() int {
	return len(x.elems)
}

func (x *index[V]) values() []V {
	values := make([]V, 0, x.len())
	for elem := x.order.Front(); elem != nil; elem = elem.Next() {
		values = append(values, elem.Value.(V))
	}
	return values
}

// indexByOneKey builds an index where later items win over earlier ones with the same key.
func indexByOneKey[V any](items []V, key func(V) string) *index[V] {
	x := newIndex[V]()
	for _, item := range items {
		x.set(key(item), item)
	}
	return x
}

// groupedIndex is a two-level index, outer key -> inner key -> value. Groups never stay empty.
type groupedIndex[V any] struct {
	groups *index[*index[V]]
}

func newGroupedIndex[V any]() *groupedIndex[V] {
	return &groupedIndex[V]{groups: newIndex[*index[V]]()}
}

func indexByTwoKeys[V any](items []V, outer, inner func(V) string) *groupedIndex[V] {
	x := newGroupedIndex[V]()
	for _, item := range items {
		x.set(outer(item), inner(item), item)
	}
	return x
}

func (x *groupedIndex[V]) set(outer, inner string, value V) {
	group, ok := x.groups.get(outer)
	if !ok {
		group = newIndex[V]()
		x.groups.set(outer, group)
	}
	group.set(inner, value)
}

func (x *groupedIndex[V]) get(outer, inner string) (V, bool) {
	group, ok := x.groups.get(outer)
	if !ok {
		var zero V
		return zero, false
	}
	return group.get(inner)
}

// group returns the values under outer in insertion order.
func (x *groupedIndex[V]) group(outer string) []V {
	group, ok := x.groups.get(outer)
	if !ok {
		return []V{}
	}
	return group.values()
}

func (x *groupedIndex[V]) delete(outer, inner string) (V, bool) {
	group, ok := x.groups.get(outer)
	if !ok {
		var zero V
		return zero, false
	}
	value, ok := group.delete(inner)
	if group.len() == 0 {
		x.groups.delete(outer)
	}
	return value, ok
}

func (x *groupedIndex[V]) deleteGroup(outer string) []V {
	group, ok := x.groups.delete(outer)
	if !ok {
		return nil
	}
	return group.values()
}

func (x *groupedIndex[V]) len() int {
	n := 0
	for _, group := range x.groups.values() {
		n += group.len()
	}
	return n
}

func (x *groupedIndex[V]) values() []V {
	values := make([]V, 0, x.len())
	for _, group := range x.groups.values() {
		values = append(values, group.values()...)
	}
	return values
}
