package chain

import (
	"sync"

	"github.com/katalvlaran/padchain/keypad"
)

type memoKey struct {
	layer    int
	from, to keypad.Symbol
}

// memo is the (layer, from, to) → cost table. A key always maps to the same
// value, so a lost race only repeats work.
type memo struct {
	mu    sync.RWMutex
	costs map[memoKey]uint64
}

func newMemo() *memo {
	return &memo{costs: make(map[memoKey]uint64)}
}

func (m *memo) get(k memoKey) (uint64, bool) {
	m.mu.RLock()
	v, ok := m.costs[k]
	m.mu.RUnlock()
	return v, ok
}

func (m *memo) put(k memoKey, v uint64) {
	m.mu.Lock()
	m.costs[k] = v
	m.mu.Unlock()
}

func (m *memo) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.costs)
}
