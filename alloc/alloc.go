package alloc

import (
	"sync/atomic"

	"github.com/graxinc/errutil"
)

type Options struct {
	MaxBlocks       int64                          // Defaults to unlimited.
	MaxBytes        int64                          // Defaults to unlimited.
	RegistryCreator func() Registry[uint64, int64] // id -> size. Defaults to Sync.
}

// Block is a reservation held until Released. The zero value is not a reservation.
type Block struct {
	id   uint64
	size int64
	t    *Tracker
}

func (b Block) Size() int64 {
	return b.size
}

func (b Block) IsZero() bool {
	return b.t == nil
}

// Release returns b to its Tracker. Panics on the zero Block.
func (b Block) Release() {
	if b.t == nil {
		panic(errutil.New(errutil.Tags{"zeroBlock": true}))
	}
	b.t.Release(b)
}

// Tracker accounts storage for queues and their elements, failing reservations past
// its limits and catching releases that happen more than once.
// Concurrent safe.
type Tracker struct {
	// immutable
	maxBlocks int64
	maxBytes  int64
	live      Registry[uint64, int64]

	ids    atomic.Uint64
	blocks atomic.Int64
	bytes  atomic.Int64
}

func NewTracker(o Options) *Tracker {
	if o.RegistryCreator == nil {
		o.RegistryCreator = func() Registry[uint64, int64] { return &Sync[uint64, int64]{} }
	}
	return &Tracker{
		maxBlocks: o.MaxBlocks,
		maxBytes:  o.MaxBytes,
		live:      o.RegistryCreator(),
	}
}

// Reserve accounts one block of size bytes. !ok when a limit would be exceeded,
// in which case nothing is accounted.
func (t *Tracker) Reserve(size int64) (_ Block, ok bool) {
	size = max(0, size)

	if !t.take(&t.blocks, 1, t.maxBlocks) {
		return Block{}, false
	}
	if !t.take(&t.bytes, size, t.maxBytes) {
		t.blocks.Add(-1)
		return Block{}, false
	}

	id := t.ids.Add(1)
	if !t.live.Add(id, size) {
		panic(errutil.New(errutil.Tags{"duplicateBlock": id}))
	}
	return Block{id: id, size: size, t: t}, true
}

// Release returns b to the tracker. Panics if b was already released or belongs elsewhere.
func (t *Tracker) Release(b Block) {
	if b.t != t {
		panic(errutil.New(errutil.Tags{"foreignBlock": b.id}))
	}
	size, ok := t.live.Delete(b.id)
	if !ok {
		panic(errutil.New(errutil.Tags{"releasedTwice": b.id}))
	}
	t.blocks.Add(-1)
	t.bytes.Add(-size)
}

// Whether b is reserved and not yet released.
func (t *Tracker) Live(b Block) bool {
	if b.t != t {
		return false
	}
	_, ok := t.live.Get(b.id)
	return ok
}

// Blocks currently reserved.
func (t *Tracker) Blocks() int64 {
	return t.blocks.Load()
}

// Bytes currently reserved.
func (t *Tracker) Bytes() int64 {
	return t.bytes.Load()
}

// take adds delta to c unless that passes limit (non-positive is unlimited).
func (t *Tracker) take(c *atomic.Int64, delta, limit int64) bool {
	if limit <= 0 {
		c.Add(delta)
		return true
	}
	for {
		old := c.Load()
		if old+delta > limit {
			return false
		}
		if c.CompareAndSwap(old, old+delta) {
			return true
		} // else concurrent, try again
	}
}
