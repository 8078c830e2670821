package list

import (
	"iter"
	"sync"
)

// ForwardList represents a singly linked list.
//
// Every node holds a value and a link to the following node only, so the list can be
// walked front to back. The sentinel node is embedded into the list itself and plays
// the "before begin" position: inserting after it is inserting at the front, which
// makes insertion after any position O(1) without special cases for the empty list.
//
// The zero value is an empty list ready to use. ForwardList is not safe for concurrent use.
type ForwardList[T any] struct {
	pool *sync.Pool // optional pool used to create/release list nodes
	root Node[T]    // sentinel list node, only root.next is used
	len  int        // current list length excluding (this) sentinel node
}

// New creates new ForwardList instance.
func New[T any]() *ForwardList[T] {
	return NewPooled[T](nil)
}

// NewPooled creates new ForwardList instance.
// Pooled list uses given pool for nodes creating/releasing,
// the pool must produce *Node[T] values.
func NewPooled[T any](pool *sync.Pool) *ForwardList[T] {
	return &ForwardList[T]{pool: pool}
}

// From creates new ForwardList holding given values in the same order.
func From[T any](values ...T) *ForwardList[T] {
	l := New[T]()
	pos := &l.root
	for _, v := range values {
		pos = l.insertValue(v, pos)
	}
	return l
}

// FromSeq creates new ForwardList holding values produced by seq in the same order.
func FromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := New[T]()
	pos := l.BeforeBegin()
	for v := range seq {
		pos = l.InsertAfter(pos, v)
	}
	return l
}

// Len returns the number of elements of list l.
func (l *ForwardList[T]) Len() int {
	return l.len
}

// IsEmpty reports whether list l has no elements.
func (l *ForwardList[T]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first value of list l, ok is false if the list is empty.
func (l *ForwardList[T]) Front() (v T, ok bool) {
	if l.root.next == nil {
		return
	}
	return l.root.next.value, true
}

// PushFront inserts a new node with value v at the front of list l
// and returns iterator pointing to it.
func (l *ForwardList[T]) PushFront(v T) Iterator[T] {
	return l.iterator(l.insertValue(v, &l.root))
}

// PopFront removes the first node of list l and returns its value.
// Panics with ErrListIsEmpty if the list is empty.
func (l *ForwardList[T]) PopFront() T {
	e := l.root.next
	if e == nil {
		panic(ErrListIsEmpty)
	}
	v := e.value
	l.removeAfter(&l.root)
	return v
}

// InsertAfter inserts a new node with value v immediately after pos and returns
// iterator pointing to it. The pos must point to a node of l or to its before begin
// position, passing the end iterator panics with ErrIteratorIsEnd.
func (l *ForwardList[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	at := pos.position()
	if at == nil {
		panic(ErrIteratorIsEnd)
	}
	return l.iterator(l.insertValue(v, at))
}

// EraseAfter removes the node following pos and returns iterator pointing to the node
// which follows the removed one (or the end iterator).
// Panics with ErrNoElementAfter if pos points to the last node.
func (l *ForwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := pos.position()
	if at == nil {
		panic(ErrIteratorIsEnd)
	}
	if at.next == nil {
		panic(ErrNoElementAfter)
	}
	l.removeAfter(at)
	return l.iterator(at.next)
}

// Clear removes all existing elements of list l.
func (l *ForwardList[T]) Clear() {
	for e := l.root.next; e != nil; {
		next := e.next
		l.release(e)
		e = next
	}
	l.root.next = nil
	l.len = 0
}

// Swap exchanges contents of lists l and other. No values are copied.
// Each list keeps its own pool.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.root.next, other.root.next = other.root.next, l.root.next
	l.len, other.len = other.len, l.len
}

// Clone returns an independent copy of list l sharing its pool.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	return l.cloneWith(l.pool)
}

// Assign replaces contents of list l with a copy of other.
// The copy is built before l is touched, so l.Assign(l) keeps l as is.
func (l *ForwardList[T]) Assign(other *ForwardList[T]) {
	tmp := other.cloneWith(l.pool)
	l.Swap(tmp)
	tmp.Clear()
}

// BeforeBegin returns iterator pointing before the first node.
// It may be passed to InsertAfter/EraseAfter but must never be dereferenced.
func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	return l.iterator(&l.root)
}

// CBeforeBegin is the read-only version of BeforeBegin.
func (l *ForwardList[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// Begin returns iterator pointing to the first node or the end iterator if l is empty.
func (l *ForwardList[T]) Begin() Iterator[T] {
	return l.iterator(l.root.next)
}

// End returns the end iterator.
func (l *ForwardList[T]) End() Iterator[T] {
	return l.iterator(nil)
}

// CBegin is the read-only version of Begin.
func (l *ForwardList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is the read-only version of End.
func (l *ForwardList[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// All returns a sequence of list values from front to back.
// List must not be modified while the sequence is iterated.
func (l *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.root.next; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Values returns list values as a slice.
func (l *ForwardList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for e := l.root.next; e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

func (l *ForwardList[T]) iterator(n *Node[T]) Iterator[T] {
	return Iterator[T]{cursor[T]{list: l, node: n}}
}

// cloneWith copies list l node for node into a new list using given pool.
func (l *ForwardList[T]) cloneWith(pool *sync.Pool) *ForwardList[T] {
	c := NewPooled[T](pool)
	pos := &c.root
	for e := l.root.next; e != nil; e = e.next {
		pos = c.insertValue(e.value, pos)
	}
	return c
}

// insertValue creates a node holding v, links it after at, increments l.len and returns it.
func (l *ForwardList[T]) insertValue(v T, at *Node[T]) (e *Node[T]) {
	// Create list node
	if l.pool != nil {
		e = l.pool.Get().(*Node[T])
		e.value = v
	} else {
		e = &Node[T]{value: v}
	}
	e.next = at.next
	at.next = e
	l.len++
	return e
}

// removeAfter unlinks the node following at, decrements l.len and releases the node.
func (l *ForwardList[T]) removeAfter(at *Node[T]) {
	e := at.next
	at.next = e.next
	l.len--
	l.release(e)
}

// release cleans up removed node and returns it to the pool if pool is used.
func (l *ForwardList[T]) release(e *Node[T]) {
	// Clean up removed node to avoid memory leaks
	if l.pool == nil {
		e.next = nil
		return
	}
	*e = Node[T]{}
	l.pool.Put(e)
}
