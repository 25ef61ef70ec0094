package ringqueue

import (
	"strings"

	"github.com/graxinc/errutil"
	"github.com/graxinc/ringqueue/alloc"
	"github.com/graxinc/ringqueue/ring"
)

// Element is a queue item owning one string. Its link is embedded, so one
// reservation covers both.
type Element struct {
	link  ring.Link[Element]
	value string
	block alloc.Block
}

// newElement copies s. !ok if the tracker refused the reservation, nothing held then.
func newElement(t *alloc.Tracker, s string) (_ *Element, ok bool) {
	b, ok := t.Reserve(int64(len(s)))
	if !ok {
		return nil, false
	}
	e := &Element{value: strings.Clone(s), block: b}
	e.link.Bind(e)
	return e, true
}

func (e *Element) Value() string {
	return e.value
}

// Release frees e. Must be called exactly once per removed element, and never on
// one still in a queue. Queue.Free releases those still linked.
func (e *Element) Release() {
	if e.link.Linked() {
		panic(errutil.New(errutil.Tags{"releaseLinked": e.value}))
	}
	if e.block.IsZero() {
		panic(errutil.New(errutil.Tags{"elementReleasedTwice": true}))
	}
	b := e.block
	e.block = alloc.Block{}
	e.value = ""
	b.Release()
}

// copyOut writes up to len(buf)-1 bytes of s then a 0 byte. Noop on empty buf.
func copyOut(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}
