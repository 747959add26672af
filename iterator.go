package ringlist

// Iterator is a read-write cursor over a ring position. Iterators are plain
// values: copy them freely and compare them with ==, two iterators are equal
// exactly when they identify the same node. The zero Iterator identifies no
// position and must not be used.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element at the cursor. The cursor must not be at End().
func (it Iterator[T]) Value() T { return it.n.elem }

// Ptr returns a pointer to the element at the cursor, valid until the element
// is erased. The cursor must not be at End().
func (it Iterator[T]) Ptr() *T { return &it.n.elem }

// Set replaces the element at the cursor. The cursor must not be at End().
func (it Iterator[T]) Set(v T) { it.n.elem = v }

// Next returns the cursor at the following position, leaving the receiver
// unchanged.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.n.next} }

// Prev returns the cursor at the preceding position, leaving the receiver
// unchanged.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.n.prev} }

// Advance moves the cursor to the following position and returns its position
// from before the move.
func (it *Iterator[T]) Advance() Iterator[T] {
	at := *it
	it.n = it.n.next
	return at
}

// Retreat moves the cursor to the preceding position and returns its position
// from before the move.
func (it *Iterator[T]) Retreat() Iterator[T] {
	at := *it
	it.n = it.n.prev
	return at
}

// Const returns the read-only view of the cursor. There is no conversion
// back.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.n} }

// ConstIterator is the read-only variant of Iterator: the same traversal and
// comparison behavior without access to modify the element.
type ConstIterator[T any] struct {
	n *node[T]
}

// Value returns the element at the cursor. The cursor must not be at the
// list's end position.
func (it ConstIterator[T]) Value() T { return it.n.elem }

// Next returns the cursor at the following position, leaving the receiver
// unchanged.
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.n.next} }

// Prev returns the cursor at the preceding position, leaving the receiver
// unchanged.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.n.prev} }

// Advance moves the cursor to the following position and returns its position
// from before the move.
func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	at := *it
	it.n = it.n.next
	return at
}

// Retreat moves the cursor to the preceding position and returns its position
// from before the move.
func (it *ConstIterator[T]) Retreat() ConstIterator[T] {
	at := *it
	it.n = it.n.prev
	return at
}
