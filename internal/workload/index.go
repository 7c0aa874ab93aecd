package workload

import (
	"github.com/chen3feng/stl4go"
	"github.com/cockroachdb/swiss"
	"github.com/zyedidia/generic/avl"
)

// IndexKind selects the map a workload counts keys in.
type IndexKind string

const (
	SkipList IndexKind = "skiplist"
	AVL      IndexKind = "avl"
	Swiss    IndexKind = "swiss"
)

// index counts occurrences of keys.
type index[T any] interface {
	// Inc counts key and reports whether the index took ownership of it.
	Inc(key T) bool
	Len() int
	Each(fn func(key T))
}

func newIndex[T any](k Kind[T], kind IndexKind) (index[T], error) {
	switch kind {
	case SkipList:
		return &skipIndex[T]{skl: stl4go.NewSkipListFunc[T, int](k.Compare)}, nil
	case AVL:
		return &avlIndex[T]{tree: avl.New[T, *int](func(a, b T) bool { return k.Compare(a, b) < 0 })}, nil
	case Swiss:
		return &swissIndex[T]{m: swiss.New[string, *entry[T]](1024), key: k.Key}, nil
	}
	return nil, ErrUnknownIndex
}

// skipIndex is an ordered index on a skip list.
type skipIndex[T any] struct {
	skl *stl4go.SkipList[T, int]
}

func (x *skipIndex[T]) Inc(key T) bool {
	if n := x.skl.Find(key); n != nil {
		*n++
		return false
	}
	x.skl.Insert(key, 1)
	return true
}

func (x *skipIndex[T]) Len() int { return x.skl.Len() }

func (x *skipIndex[T]) Each(fn func(T)) {
	x.skl.ForEach(func(key T, _ int) { fn(key) })
}

// avlIndex is an ordered index on an AVL tree.
type avlIndex[T any] struct {
	tree *avl.Tree[T, *int]
	size int
}

func (x *avlIndex[T]) Inc(key T) bool {
	if n, ok := x.tree.Get(key); ok {
		*n++
		return false
	}
	n := 1
	x.tree.Put(key, &n)
	x.size++
	return true
}

func (x *avlIndex[T]) Len() int { return x.size }

func (x *avlIndex[T]) Each(fn func(T)) {
	x.tree.Each(func(key T, _ *int) { fn(key) })
}

type entry[T any] struct {
	key T
	n   int
}

// swissIndex is a hash index keyed by content.
type swissIndex[T any] struct {
	m   *swiss.Map[string, *entry[T]]
	key func(T) string
}

func (x *swissIndex[T]) Inc(key T) bool {
	k := x.key(key)
	if e, ok := x.m.Get(k); ok {
		e.n++
		return false
	}
	x.m.Put(k, &entry[T]{key: key, n: 1})
	return true
}

func (x *swissIndex[T]) Len() int { return x.m.Len() }

func (x *swissIndex[T]) Each(fn func(T)) {
	x.m.All(func(_ string, e *entry[T]) bool {
		fn(e.key)
		return true
	})
}
