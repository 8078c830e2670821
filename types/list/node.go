package list

// Node is a single link of the ForwardList chain.
// It is exported only to let callers fill a sync.Pool for NewPooled.
type Node[T any] struct {
	value T
	next  *Node[T]
}
