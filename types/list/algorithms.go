package list

import (
	"github.com/tidwall/hashmap"
	"gopkg.in/typ.v4"
)

// SpliceAfter moves all nodes of other right after pos keeping their order.
// No values are copied, other becomes empty. Splicing list into itself does nothing.
func (l *ForwardList[T]) SpliceAfter(pos Position[T], other *ForwardList[T]) {
	at := pos.position()
	if at == nil {
		panic(ErrIteratorIsEnd)
	}
	if other == l || other.root.next == nil {
		return
	}
	last := other.root.next
	for last.next != nil {
		last = last.next
	}
	last.next = at.next
	at.next = other.root.next
	l.len += other.len
	other.root.next = nil
	other.len = 0
}

// Reverse reverses order of nodes in list l.
func (l *ForwardList[T]) Reverse() {
	var prev *Node[T]
	for e := l.root.next; e != nil; {
		next := e.next
		e.next = prev
		prev = e
		e = next
	}
	l.root.next = prev
}

// RemoveIf removes every node which value satisfies pred and returns amount of removed nodes.
func (l *ForwardList[T]) RemoveIf(pred func(v T) bool) int {
	removed := 0
	for at := &l.root; at.next != nil; {
		if pred(at.next.value) {
			l.removeAfter(at)
			removed++
			continue
		}
		at = at.next
	}
	return removed
}

// Unique removes every value which already occurred closer to the front of list l
// and returns amount of removed nodes.
func Unique[T comparable](l *ForwardList[T]) int {
	seen := hashmap.New[T, struct{}](l.Len())
	return l.RemoveIf(func(v T) bool {
		if _, ok := seen.Get(v); ok {
			return true
		}
		seen.Set(v, struct{}{})
		return false
	})
}

// Compare compares lists lexicographically.
// Result is 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[T typ.Ordered](a, b *ForwardList[T]) int {
	x, y := a.root.next, b.root.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if cmp := typ.Compare(x.value, y.value); cmp != 0 {
			return cmp
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

// Equal reports whether lists hold equal values in the same order.
func Equal[T comparable](a, b *ForwardList[T]) bool {
	if a.len != b.len {
		return false
	}
	for x, y := a.root.next, b.root.next; x != nil; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return true
}
