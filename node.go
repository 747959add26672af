package ringlist

// node is the linkage primitive of the ring. The container's sentinel is a
// node whose elem is never read, every other node owns exactly one element.
// Links are never nil while the node is part of a ring.
type node[T any] struct {
	next, prev *node[T]
	elem       T
}

// hook inserts n immediately before pos in pos's ring. n must not be part of
// any ring.
func (n *node[T]) hook(pos *node[T]) {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
}

// unhook removes n from its ring by bridging its neighbors. n's own links are
// left as they are, the caller drops or relinks n right after.
func (n *node[T]) unhook() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// swapNodes exchanges the ring positions of a and b. The identical and
// adjacent cases take a separate path, rewiring them through the general one
// would corrupt one and two node rings.
func swapNodes[T any](a, b *node[T]) {
	switch {
	case a == b:
	case a.next == b:
		a.unhook()
		a.hook(b.next)
	case b.next == a:
		b.unhook()
		b.hook(a.next)
	default:
		a.prev, b.prev = b.prev, a.prev
		a.next, b.next = b.next, a.next
		a.prev.next = a
		a.next.prev = a
		b.prev.next = b
		b.next.prev = b
	}
}
