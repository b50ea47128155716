package set

import (
	"iter"
	"slices"
)

// Set 比較可能な要素の集合
type Set[T comparable] struct {
	set map[T]struct{}
}

// New 空の集合を生成します
func New[T comparable]() Set[T] {
	return Set[T]{
		set: make(map[T]struct{}),
	}
}

// From スライスから集合を生成します
func From[T comparable](vs ...T) Set[T] {
	s := Set[T]{
		set: make(map[T]struct{}, len(vs)),
	}
	s.Add(vs...)
	return s
}

// Add 要素を追加します
func (set *Set[T]) Add(v ...T) {
	if set.set == nil {
		set.set = make(map[T]struct{}, len(v))
	}
	for _, v := range v {
		set.set[v] = struct{}{}
	}
}

// Remove 要素を削除します
func (set *Set[T]) Remove(v ...T) {
	for _, v := range v {
		delete(set.set, v)
	}
}

// Contains 指定した要素が含まれているかどうか
func (set Set[T]) Contains(v T) bool {
	_, ok := set.set[v]
	return ok
}

// Len 要素数
func (set Set[T]) Len() int {
	return len(set.set)
}

// Values 要素のイテレーター
func (set Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range set.set {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice 要素をスライスで返します。順序は不定
func (set Set[T]) Slice() []T {
	return slices.Collect(set.Values())
}

// Clone 集合を複製します
func (set Set[T]) Clone() Set[T] {
	c := Set[T]{set: make(map[T]struct{}, len(set.set))}
	for v := range set.set {
		c.set[v] = struct{}{}
	}
	return c
}
