package ring

// Sort is a stable merge sort by cmp (negative when a orders before b).
// Nodes are only relinked, never allocated. O(n log n) time, O(log n) stack.
func (l *List[T]) Sort(cmp func(a, b *T) int) {
	if l.Empty() || l.Singular() {
		return
	}
	l.attach(sortChain(l.detach(), cmp))
}

// Merge moves every node of other into l, both already sorted by cmp.
// Equal nodes from l come first. other is left empty.
func (l *List[T]) Merge(other *List[T], cmp func(a, b *T) int) {
	if other == l || other.Empty() {
		return
	}
	if l.Empty() {
		l.PushBackList(other)
		return
	}
	l.attach(mergeChains(l.detach(), other.detach(), cmp))
}

// detach hands the nodes over as a nil terminated chain linked by next only, leaving l empty.
// prev pointers of the chain are stale until attach.
func (l *List[T]) detach() *Link[T] {
	first := l.root.next
	l.root.prev.next = nil
	l.Init()
	return first
}

// attach links chain into the empty l, rebuilding prev in one forward pass.
func (l *List[T]) attach(chain *Link[T]) {
	prev := &l.root
	for n := chain; n != nil; n = n.next {
		prev.next = n
		n.prev = prev
		prev = n
	}
	prev.next = &l.root
	l.root.prev = prev
}

func sortChain[T any](first *Link[T], cmp func(a, b *T) int) *Link[T] {
	if first == nil || first.next == nil {
		return first
	}
	before, mid := middle(first, nil)
	before.next = nil // first and mid now own disjoint chains.

	return mergeChains(sortChain(first, cmp), sortChain(mid, cmp), cmp)
}

// mergeChains takes from a on ties, keeping the merge stable.
func mergeChains[T any](a, b *Link[T], cmp func(a, b *T) int) *Link[T] {
	var head Link[T]
	tail := &head
	for a != nil && b != nil {
		if cmp(b.owner, a.owner) < 0 {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}
