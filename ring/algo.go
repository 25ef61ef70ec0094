package ring

// Middle returns the node at 0-based index n/2 (rounded down), nil if empty.
func (l *List[T]) Middle() *Link[T] {
	if l.Empty() {
		return nil
	}
	_, mid := middle(l.root.next, &l.root)
	return mid
}

// middle walks first towards end (exclusive) with a fast cursor taking two links per step.
// mid is at index n/2, before is its predecessor or nil when mid == first.
// end is the sentinel for a ring or nil for a detached chain.
func middle[T any](first, end *Link[T]) (before, mid *Link[T]) {
	slow, fast := first, first
	for fast != end && fast.next != end {
		before = slow
		slow = slow.next
		fast = fast.next.next
	}
	return before, slow
}

// SwapPairs swaps nodes 0<->1, 2<->3 and so on. An odd trailing node stays.
func (l *List[T]) SwapPairs() {
	if l.Empty() {
		return
	}
	for a := l.root.next; a != &l.root && a.next != &l.root; a = a.next {
		swap(a, a.next) // a now second of the pair.
	}
}

// Reverse relinks in place without allocating.
func (l *List[T]) Reverse() {
	if l.Empty() {
		return
	}
	front, back := &l.root, &l.root
	for {
		front = front.next
		back = back.prev
		if front == back {
			return
		}
		swap(front, back)
		front, back = back, front // cursors keep their positions, not their nodes.
		if front.next == back {
			return
		}
	}
}

// RemoveRuns unlinks every node of each run of equal neighbors (run length >= 2),
// so only values occurring once survive. l must be sorted so equal values are adjacent.
// drop receives each node after it is detached and may release it.
// Returns the count removed.
func (l *List[T]) RemoveRuns(eq func(a, b *T) bool, drop func(*Link[T])) int {
	if l.Empty() {
		return 0
	}
	var removed int
	for pos := l.root.next; pos != &l.root && pos.next != &l.root; {
		if !eq(pos.owner, pos.next.owner) {
			pos = pos.next
			continue
		}

		end := pos.next.next
		for end != &l.root && eq(pos.owner, end.owner) {
			end = end.next
		}

		// end is the first survivor after the run, possibly the sentinel.
		for n := pos; n != end; {
			next := n.next
			unlink(n)
			drop(n)
			removed++
			n = next
		}
		pos = end
	}
	return removed
}
