package ringlist

import "math"

// List is a doubly-linked list of elements of type T, arranged in a ring
// closed by a sentinel node. The zero value is an empty list ready to use.
// A List must not be copied after first use.
//
// A List is not safe for concurrent mutation, synchronizing access from
// multiple goroutines is the caller's responsibility.
type List[T any] struct {
	root node[T]
	size int
}

// New returns an initialized empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

func (l *List[T]) init() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Empty tells whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// MaxLen returns the capacity ceiling of the length counter. Insert refuses
// to grow the list past it.
func (l *List[T]) MaxLen() int { return math.MaxInt }

// Front returns a pointer to the first element. The list must not be empty.
func (l *List[T]) Front() *T {
	l.lazyInit()
	return &l.root.next.elem
}

// Back returns a pointer to the last element. The list must not be empty.
func (l *List[T]) Back() *T {
	l.lazyInit()
	return &l.root.prev.elem
}

// Begin returns the cursor at the first element, or End() when the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.root.next}
}

// End returns the cursor at the position after the last element. It stays
// valid across every mutation except Clear.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.root}
}

// ConstBegin returns the read-only cursor at the first element.
func (l *List[T]) ConstBegin() ConstIterator[T] { return l.Begin().Const() }

// ConstEnd returns the read-only cursor at the position after the last
// element.
func (l *List[T]) ConstEnd() ConstIterator[T] { return l.End().Const() }

// Insert places a new element with value v immediately before pos and returns
// the cursor at the new element. All existing cursors stay valid. When the
// length counter is at MaxLen(), Insert does nothing and returns End().
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	l.lazyInit()
	if l.size == math.MaxInt {
		return l.End()
	}

	n := &node[T]{elem: v}
	n.hook(pos.n)
	l.size++
	return Iterator[T]{n}
}

// Erase removes the element at pos and returns the cursor at the element that
// followed it, or End() when pos was the last element. Cursors at pos become
// invalid, all others stay valid. Erase at End() is a no-op that returns
// End() unchanged.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.n == &l.root {
		return pos
	}

	next := Iterator[T]{pos.n.next}
	pos.n.unhook()
	pos.n.next = nil
	pos.n.prev = nil
	l.size--
	return next
}

// EraseRange removes the elements in the half-open range [first, last) by
// repeated single erase and returns last, which stays valid throughout.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first != last {
		first = l.Erase(first)
	}

	return last
}

// PushFront inserts v as the first element and returns its cursor.
func (l *List[T]) PushFront(v T) Iterator[T] { return l.Insert(l.Begin(), v) }

// PushBack inserts v as the last element and returns its cursor.
func (l *List[T]) PushBack(v T) Iterator[T] { return l.Insert(l.End(), v) }

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() { l.Erase(l.Begin()) }

// PopBack removes the last element. The list must not be empty.
func (l *List[T]) PopBack() { l.Erase(l.End().Prev()) }

// Swap exchanges the ring positions of the elements at a and b in O(1).
// Neither cursor may be at End(). Cursors keep identifying their elements at
// the new positions.
func (l *List[T]) Swap(a, b Iterator[T]) { swapNodes(a.n, b.n) }

// Clear removes every element and leaves the list empty. Every outstanding
// cursor becomes invalid. Clear on an empty list is a no-op.
func (l *List[T]) Clear() {
	l.lazyInit()
	n := l.root.next
	for n != &l.root {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}

	l.init()
	l.size = 0
}

// Values returns the elements in order as a new slice.
func (l *List[T]) Values() []T {
	v := make([]T, 0, l.size)
	for it := l.Begin(); it != l.End(); it = it.Next() {
		v = append(v, it.Value())
	}

	return v
}

// Each calls f with a pointer to every element, front to back. f must not
// mutate the list structure.
func (l *List[T]) Each(f func(*T)) {
	for it := l.Begin(); it != l.End(); it = it.Next() {
		f(it.Ptr())
	}
}
