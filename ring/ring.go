package ring

import (
	"iter"

	"github.com/graxinc/errutil"
)

// Link is embedded by value in the type it links, so linking never allocates.
//
// A Link is either linked into exactly one ring, or detached (both pointers nil).
// Inserting a linked Link or unlinking a detached one panics.
type Link[T any] struct {
	next, prev *Link[T]

	owner *T // nil for a sentinel.
}

// Bind records o as the value embedding n. Call before first insert.
func (n *Link[T]) Bind(o *T) {
	n.owner = o
}

// Owner returns the value embedding n, nil for a sentinel.
func (n *Link[T]) Owner() *T {
	return n.owner
}

// Linked reports whether n is currently part of a ring.
func (n *Link[T]) Linked() bool {
	return n.next != nil
}

// List is a circular doubly linked list anchored by a sentinel link.
// The zero value is an empty list ready to use. Must not be copied after first use.
// Not concurrent safe.
type List[T any] struct {
	root Link[T] // sentinel, only &root, root.prev, and root.next are used
}

// Init initializes or clears l. Nodes still in the ring are abandoned, not detached.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.owner = nil
	return l
}

func New[T any]() *List[T] {
	return new(List[T]).Init()
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func (l *List[T]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Exactly one node.
func (l *List[T]) Singular() bool {
	return !l.Empty() && l.root.next == l.root.prev
}

// Len walks the ring. The complexity is O(n).
func (l *List[T]) Len() int {
	var c int
	for n := l.Front(); n != nil; n = l.Next(n) {
		c++
	}
	return c
}

// Front returns the first node or nil if empty.
func (l *List[T]) Front() *Link[T] {
	if l.Empty() {
		return nil
	}
	return l.root.next
}

// Back returns the last node or nil if empty.
func (l *List[T]) Back() *Link[T] {
	if l.Empty() {
		return nil
	}
	return l.root.prev
}

// Next returns the node after n or nil at the end.
func (l *List[T]) Next(n *Link[T]) *Link[T] {
	if p := n.next; p != &l.root {
		return p
	}
	return nil
}

// Prev returns the node before n or nil at the start.
func (l *List[T]) Prev(n *Link[T]) *Link[T] {
	if p := n.prev; p != &l.root {
		return p
	}
	return nil
}

func (l *List[T]) PushFront(n *Link[T]) {
	l.lazyInit()
	insert(n, &l.root)
}

func (l *List[T]) PushBack(n *Link[T]) {
	l.lazyInit()
	insert(n, l.root.prev)
}

// at must be linked into l.
func (l *List[T]) InsertAfter(n, at *Link[T]) {
	insert(n, at)
}

// at must be linked into l.
func (l *List[T]) InsertBefore(n, at *Link[T]) {
	insert(n, at.prev)
}

// Unlink detaches n from l. n must not be the sentinel.
func (l *List[T]) Unlink(n *Link[T]) {
	if n == &l.root {
		panic(errutil.New(errutil.Tags{"unlinkSentinel": true}))
	}
	unlink(n)
}

// PushFrontList moves all of other to the front of l, leaving other empty. O(1).
func (l *List[T]) PushFrontList(other *List[T]) {
	l.lazyInit()
	splice(other, &l.root)
}

// PushBackList moves all of other to the back of l, leaving other empty. O(1).
func (l *List[T]) PushBackList(other *List[T]) {
	l.lazyInit()
	splice(other, l.root.prev)
}

// Swap exchanges the ring positions of a and b, both linked into l.
func (l *List[T]) Swap(a, b *Link[T]) {
	swap(a, b)
}

// All yields owners front to back. Unlinking the yielded node is safe.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.Front(); n != nil; {
			next := l.Next(n)
			if !yield(n.owner) {
				return
			}
			n = next
		}
	}
}

// Check verifies next.prev and prev.next point back for every link, including the sentinel.
func (l *List[T]) Check() error {
	if l.root.next == nil {
		return nil // never initialized, empty.
	}
	idx := -1
	n := &l.root
	for {
		if n.next == nil || n.prev == nil {
			return errutil.New(errutil.Tags{"detachedInRing": idx})
		}
		if n.next.prev != n {
			return errutil.New(errutil.Tags{"brokenNext": idx})
		}
		if n.prev.next != n {
			return errutil.New(errutil.Tags{"brokenPrev": idx})
		}
		if idx >= 0 && n.owner == nil {
			return errutil.New(errutil.Tags{"unboundLink": idx})
		}
		n = n.next
		idx++
		if n == &l.root {
			return nil
		}
	}
}

// insert links n after at.
func insert[T any](n, at *Link[T]) {
	if n.Linked() {
		panic(errutil.New(errutil.Tags{"alreadyLinked": true}))
	}
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
}

func unlink[T any](n *Link[T]) {
	if !n.Linked() {
		panic(errutil.New(errutil.Tags{"notLinked": true}))
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// splice moves every node of src after at, then empties src.
func splice[T any](src *List[T], at *Link[T]) {
	if src.Empty() {
		return
	}
	first, last := src.root.next, src.root.prev
	after := at.next

	first.prev = at
	at.next = first
	last.next = after
	after.prev = last

	src.Init()
}

func swap[T any](a, b *Link[T]) {
	if a == b {
		return
	}
	if !a.Linked() || !b.Linked() {
		panic(errutil.New(errutil.Tags{"swapDetached": true}))
	}

	// Adjacent pairs: generic relinking would corrupt them since each node is
	// the other's neighbor.
	switch {
	case a.next == b:
		unlink(b)
		insert(b, a.prev)
	case b.next == a:
		unlink(a)
		insert(a, b.prev)
	default:
		ap, bp := a.prev, b.prev
		unlink(a)
		unlink(b)
		insert(b, ap)
		insert(a, bp)
	}
}
