/*
Package ringlist provides a generic doubly-linked list built on a circular
sentinel node, with constant-time insertion and removal and bidirectional
traversal through iterator values.

Structure

A list owns a single sentinel node that closes the ring: the sentinel's next
link points to the first element, its previous link to the last one, and an
empty list is a sentinel linked to itself. Every element lives in its own node,
created on insertion and dropped on removal. The zero value of List is ready to
use, and New() returns an initialized list for when a pointer is more
convenient.

Iterators

Begin() and End() return cursors into the ring. A cursor is a small value that
identifies a node; cursors compare equal exactly when they identify the same
node, and End() marks the position after the last element. Next() and Prev()
return the neighboring cursor without changing the receiver, while Advance()
and Retreat() move the cursor in place and return its position from before the
move, which makes erase-during-iteration loops straightforward. Iterator gives
read-write access to the element, ConstIterator read-only access; a
ConstIterator can be obtained from an Iterator but never the other way around.

Reading the element at End(), or stepping a cursor whose element has been
erased, is the caller's bug: the package performs no checks on these paths. The
one guarded case is Erase at End(), which is a safe no-op. Insert refuses to
grow the list past the capacity of its length counter and signals it by
returning End() instead of a cursor to a new element.

Invalidation

Erasing an element invalidates only the cursors at that element. Cursors at any
other position, including End(), stay valid across Insert, Erase and the Swap
of other elements. Clear invalidates every cursor except a freshly
obtained End().

Concurrency

A list performs no internal synchronization. Concurrent reads are safe;
mutating a list shared between goroutines requires external synchronization by
the caller.
*/
package ringlist
