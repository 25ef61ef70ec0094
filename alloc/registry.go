package alloc

import (
	"sync"

	"github.com/graxinc/syncmap"
	"golang.org/x/exp/constraints"
)

// Registry records live blocks by id.
// Concurrent safe.
type Registry[K, V any] interface {
	// Replaces. !ok if already present.
	Add(K, V) (ok bool)

	Delete(K) (_ V, exists bool)

	Get(K) (_ V, ok bool)
}

// Sync is the default Registry.
type Sync[K comparable, V any] struct {
	// NOTE there exists zero happens-before when using
	// syncmap.Range even without concurrency, avoid.
	m syncmap.Map[K, V]
}

func (m *Sync[K, V]) Add(k K, v V) bool {
	_, loaded := m.m.Swap(k, v)
	return !loaded
}

func (m *Sync[K, V]) Delete(k K) (V, bool) {
	return m.m.LoadAndDelete(k)
}

func (m *Sync[K, V]) Get(k K) (V, bool) {
	return m.m.Load(k)
}

type shard[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// Bucketed spreads keys over mutex guarded shards by key modulo.
type Bucketed[K constraints.Integer, V any] struct {
	shards    []*shard[K, V]
	shardsLen uint64
}

// n defaults to 64.
func NewBucketed[K constraints.Integer, V any](n int) Bucketed[K, V] {
	if n <= 0 {
		n = 64
	}

	shards := make([]*shard[K, V], n)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return Bucketed[K, V]{
		shards:    shards,
		shardsLen: uint64(n),
	}
}

func (m Bucketed[K, V]) Add(k K, v V) bool {
	s := m.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[k]
	s.m[k] = v
	return !ok
}

func (m Bucketed[K, V]) Delete(k K) (V, bool) {
	s := m.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[k]
	delete(s.m, k)
	return v, ok
}

func (m Bucketed[K, V]) Get(k K) (V, bool) {
	s := m.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[k]
	return v, ok
}

func (m Bucketed[K, V]) shard(k K) *shard[K, V] {
	idx := uint64(k) % m.shardsLen
	return m.shards[idx]
}
