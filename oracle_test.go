package ringqueue_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/graxinc/ringqueue"
	"github.com/graxinc/ringqueue/alloc"

	"github.com/pkg/profile"
	"github.com/szyhf/go-container/list"
)

// Runs random operations against both a Queue and a container list, comparing after each.
func TestQueue_compareList(t *testing.T) {
	t.Parallel()

	do := func(t *testing.T, seed int64) {
		t.Parallel()

		rando := rand.New(rand.NewSource(seed)) //nolint:gosec

		tr := alloc.NewTracker(alloc.Options{})
		ours := ringqueue.New(ringqueue.Options{Tracker: tr})
		theirs := list.New[string]()

		theirValues := func() []string {
			var vs []string
			for e := theirs.Front(); e != nil; e = e.Next() {
				vs = append(vs, e.Value)
			}
			return vs
		}
		rebuild := func(vs []string) {
			theirs.Init()
			for _, v := range vs {
				theirs.PushBack(v)
			}
		}

		for i := range 2000 {
			v := strconv.Itoa(rando.Intn(20))

			var op string
			switch rando.Intn(9) {
			case 0, 1:
				op = "InsertHead"
				ours.InsertHead(v)
				theirs.PushFront(v)
			case 2, 3:
				op = "InsertTail"
				ours.InsertTail(v)
				theirs.PushBack(v)
			case 4:
				op = "RemoveHead"
				got := ours.RemoveHead(nil)
				e := theirs.Front()
				if (got == nil) != (e == nil) {
					t.Fatal(i, op, got, e)
				}
				if got != nil {
					if got.Value() != e.Value {
						t.Fatal(i, op, got.Value(), e.Value)
					}
					got.Release()
					theirs.Remove(e)
				}
			case 5:
				op = "RemoveTail"
				got := ours.RemoveTail(nil)
				e := theirs.Back()
				if (got == nil) != (e == nil) {
					t.Fatal(i, op, got, e)
				}
				if got != nil {
					if got.Value() != e.Value {
						t.Fatal(i, op, got.Value(), e.Value)
					}
					got.Release()
					theirs.Remove(e)
				}
			case 6:
				op = "DeleteMid"
				ours.DeleteMid()
				if n := theirs.Len(); n > 0 {
					e := theirs.Front()
					for range n / 2 {
						e = e.Next()
					}
					theirs.Remove(e)
				}
			case 7:
				op = "Reverse"
				ours.Reverse()
				vs := theirValues()
				slices.Reverse(vs)
				rebuild(vs)
			case 8:
				op = "Swap"
				ours.Swap()
				vs := theirValues()
				for j := 0; j+1 < len(vs); j += 2 {
					vs[j], vs[j+1] = vs[j+1], vs[j]
				}
				rebuild(vs)
			}

			if err := ours.Check(); err != nil {
				t.Fatal(i, op, err)
			}
			want, got := theirValues(), slices.Collect(ours.Values())
			if !slices.Equal(want, got) {
				t.Fatal(i, op, want, got)
			}
		}

		if int64(theirs.Len())+1 != tr.Blocks() {
			t.Fatal(theirs.Len(), tr.Blocks())
		}
		ours.Free()
		checkBlocks(t, tr, 0)
	}

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		t.Run(fmt.Sprintf("seed=%v", seed), func(t *testing.T) { do(t, seed) })
	}
}

func BenchmarkQueue_sort(b *testing.B) {
	rando := rand.New(rand.NewSource(5)) //nolint:gosec

	const items = 100_000

	vs := make([]string, items)
	for i := range vs {
		vs[i] = strconv.Itoa(rando.Int())
	}

	defer profile.Start(profile.MemProfile).Stop()

	for range b.N {
		b.StopTimer()
		q := ringqueue.New(ringqueue.Options{})
		for _, v := range vs {
			q.InsertTail(v)
		}
		b.StartTimer()

		q.Sort()

		b.StopTimer()
		q.Free()
		b.StartTimer()
	}
}

func BenchmarkQueue_insertRemove(b *testing.B) {
	defer profile.Start(profile.ClockProfile).Stop()

	q := ringqueue.New(ringqueue.Options{})
	defer q.Free()

	for range b.N {
		for j := range 1000 {
			if j%2 == 0 {
				q.InsertHead("v")
			} else {
				q.InsertTail("v")
			}
		}
		for range 500 {
			q.RemoveHead(nil).Release()
			q.RemoveTail(nil).Release()
		}
	}
}
