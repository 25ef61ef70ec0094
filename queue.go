package ringqueue

import (
	"iter"
	"strings"

	"github.com/graxinc/ringqueue/alloc"
	"github.com/graxinc/ringqueue/ring"
)

type Options struct {
	Tracker *alloc.Tracker // Charged for the queue and its elements. Defaults to an unlimited Tracker.
}

// Queue of strings over a sentinel ring.
// All methods accept a nil Queue, acting on it as empty.
// Not concurrent safe.
type Queue struct {
	list    ring.List[Element]
	tracker *alloc.Tracker
	block   alloc.Block // for the queue itself, zero once freed.
}

// New returns nil if the tracker refuses the queue's own reservation.
func New(o Options) *Queue {
	if o.Tracker == nil {
		o.Tracker = alloc.NewTracker(alloc.Options{})
	}
	b, ok := o.Tracker.Reserve(0)
	if !ok {
		return nil
	}
	q := &Queue{tracker: o.Tracker, block: b}
	q.list.Init()
	return q
}

// Free releases every element still queued, then the queue. Idempotent.
func (q *Queue) Free() {
	if !q.valid() {
		return
	}
	for n := q.list.Front(); n != nil; n = q.list.Front() {
		q.list.Unlink(n)
		n.Owner().Release()
	}
	b := q.block
	q.block = alloc.Block{}
	b.Release()
}

// !ok if q is nil or the element could not be reserved, q unchanged then.
func (q *Queue) InsertHead(s string) (ok bool) {
	if !q.valid() {
		return false
	}
	e, ok := newElement(q.tracker, s)
	if !ok {
		return false
	}
	q.list.PushFront(&e.link)
	return true
}

// !ok if q is nil or the element could not be reserved, q unchanged then.
func (q *Queue) InsertTail(s string) (ok bool) {
	if !q.valid() {
		return false
	}
	e, ok := newElement(q.tracker, s)
	if !ok {
		return false
	}
	q.list.PushBack(&e.link)
	return true
}

// RemoveHead unlinks the head, nil if q is nil or empty.
// Caller owns the result and must Release it.
// If buf is non-empty it receives up to len(buf)-1 bytes of the value and a 0 byte.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if !q.valid() {
		return nil
	}
	return q.remove(q.list.Front(), buf)
}

// Like RemoveHead, from the tail.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if !q.valid() {
		return nil
	}
	return q.remove(q.list.Back(), buf)
}

// Size walks the queue. O(n).
func (q *Queue) Size() int {
	if !q.valid() {
		return 0
	}
	return q.list.Len()
}

// Head to tail.
func (q *Queue) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.valid() {
			return
		}
		for e := range q.list.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Check returns an error describing the first broken link, nil when the ring is sound.
func (q *Queue) Check() error {
	if !q.valid() {
		return nil
	}
	return q.list.Check()
}

func (q *Queue) valid() bool {
	return q != nil && !q.block.IsZero()
}

func (q *Queue) remove(n *ring.Link[Element], buf []byte) *Element {
	if n == nil {
		return nil
	}
	q.list.Unlink(n)
	e := n.Owner()
	copyOut(buf, e.value)
	return e
}

func compareElements(a, b *Element) int {
	return strings.Compare(a.value, b.value)
}

func equalElements(a, b *Element) bool {
	return a.value == b.value
}
