package ringqueue

import (
	"github.com/graxinc/ringqueue/ring"
)

// DeleteMid removes and releases the element at 0-based index Size()/2,
// so with six elements the fourth goes. !ok if q is nil or empty.
func (q *Queue) DeleteMid() (ok bool) {
	if !q.valid() {
		return false
	}
	mid := q.list.Middle()
	if mid == nil {
		return false
	}
	q.list.Unlink(mid)
	mid.Owner().Release()
	return true
}

// DeleteDup removes and releases every element whose value repeats, keeping only values
// that occur once. q must be sorted. !ok only if q is nil.
func (q *Queue) DeleteDup() (ok bool) {
	if !q.valid() {
		return false
	}
	q.list.RemoveRuns(equalElements, func(n *ring.Link[Element]) {
		n.Owner().Release()
	})
	return true
}

// Swap swaps every two adjacent elements. An odd last element stays.
func (q *Queue) Swap() {
	if !q.valid() {
		return
	}
	q.list.SwapPairs()
}

// Reverse relinks the existing elements in reverse order.
func (q *Queue) Reverse() {
	if !q.valid() {
		return
	}
	q.list.Reverse()
}

// Sort orders ascending by value, stable.
func (q *Queue) Sort() {
	if !q.valid() {
		return
	}
	q.list.Sort(compareElements)
}

// Merge moves all elements of the sorted other into the sorted q, keeping q sorted.
// Equal values from q come first. other stays usable and empty.
// !ok if either queue is nil.
func (q *Queue) Merge(other *Queue) (ok bool) {
	if !q.valid() || !other.valid() {
		return false
	}
	q.list.Merge(&other.list, compareElements)
	return true
}
