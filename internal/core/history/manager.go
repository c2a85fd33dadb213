// Package history keeps a bounded stack of full-state undo snapshots.
package history

import (
	"sync"

	"github.com/parley-edit/parley/internal/logger"
	"github.com/parley-edit/parley/internal/types"
)

const DefaultMaxHistory = 100

// Snapshot is an immutable deep copy of the session state at a point in
// time. Records never alias live store memory.
type Snapshot struct {
	Records []types.Record
	Cursor  types.Cursor
	Scroll  int
}

// clone returns an independent copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	records := make([]types.Record, len(s.Records))
	copy(records, s.Records)
	return Snapshot{Records: records, Cursor: s.Cursor, Scroll: s.Scroll}
}

// Manager holds the undo stack. A snapshot is pushed once at session start
// and again before every mutating operation; Undo pops the top entry and
// restores whatever is left on top, so one call reverts exactly one
// completed push/mutate pair. The stack never drops below one entry.
type Manager struct {
	mutex sync.Mutex
	stack []Snapshot
	max   int
}

// NewManager creates a history manager capped at max snapshots.
func NewManager(max int) *Manager {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &Manager{
		stack: make([]Snapshot, 0, max),
		max:   max,
	}
}

// Push appends a copy of s, evicting the oldest entry past the cap.
func (m *Manager) Push(s Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.stack) >= m.max {
		m.stack = m.stack[1:]
	}
	m.stack = append(m.stack, s.clone())
	logger.Debugf("History: pushed snapshot, depth now %d", len(m.stack))
}

// Undo pops the top entry and returns a copy of the new top. Reports false
// when only the session-start snapshot remains.
func (m *Manager) Undo() (Snapshot, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.stack) <= 1 {
		logger.Debugf("History: nothing to undo")
		return Snapshot{}, false
	}
	m.stack = m.stack[:len(m.stack)-1]
	top := m.stack[len(m.stack)-1]
	logger.Debugf("History: undo, depth now %d", len(m.stack))
	return top.clone(), true
}

// Depth returns the current stack size.
func (m *Manager) Depth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.stack)
}
