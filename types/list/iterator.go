package list

// Position is implemented by Iterator and ConstIterator and marks a place in the list
// where InsertAfter/EraseAfter operate.
type Position[T any] interface {
	position() *Node[T]
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// cursor is the traversal state shared by both iterator kinds.
// The node is nil for the end position and &list.root for the before begin position.
type cursor[T any] struct {
	list *ForwardList[T]
	node *Node[T]
}

func (c *cursor[T]) next() {
	if c.node == nil {
		panic(ErrIteratorIsEnd)
	}
	c.node = c.node.next
}

func (c cursor[T]) deref() *Node[T] {
	switch {
	case c.node == nil:
		panic(ErrIteratorIsEnd)
	case c.list != nil && c.node == &c.list.root:
		panic(ErrIteratorIsBeforeBegin)
	}
	return c.node
}

// Iterator is a forward iterator giving mutable access to list values.
// It stays valid until the node it points to is removed from the list.
type Iterator[T any] struct {
	c cursor[T]
}

// Next moves iterator to the following node. Panics on the end iterator.
func (it *Iterator[T]) Next() {
	it.c.next()
}

// Value returns pointer to the value of current node.
// Panics on the end and before begin iterators.
func (it Iterator[T]) Value() *T {
	return &it.c.deref().value
}

// IsEnd reports whether iterator is past the last node.
func (it Iterator[T]) IsEnd() bool {
	return it.c.node == nil
}

// Equal reports whether both iterators point to the same position.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.c.node == other.position()
}

// Const converts iterator to the read-only one.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

func (it Iterator[T]) position() *Node[T] {
	return it.c.node
}

// ConstIterator is a forward iterator giving read-only access to list values.
type ConstIterator[T any] struct {
	c cursor[T]
}

// Next moves iterator to the following node. Panics on the end iterator.
func (it *ConstIterator[T]) Next() {
	it.c.next()
}

// Value returns a copy of the value of current node.
// Panics on the end and before begin iterators.
func (it ConstIterator[T]) Value() T {
	return it.c.deref().value
}

// IsEnd reports whether iterator is past the last node.
func (it ConstIterator[T]) IsEnd() bool {
	return it.c.node == nil
}

// Equal reports whether both iterators point to the same position.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.c.node == other.position()
}

func (it ConstIterator[T]) position() *Node[T] {
	return it.c.node
}
