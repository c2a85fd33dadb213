// internal/event/manager.go
package event

import (
	"sync"

	"github.com/parley-edit/parley/internal/logger"
)

// Handler is the function signature for event subscribers. It returns true
// if the event was consumed; the return value is currently unused.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event to all registered handlers for its type,
// synchronously and in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	ev := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.Debugf("Event Manager: dispatching type %v to %d handler(s)", eventType, len(handlers))

	// Copy so a handler subscribing during dispatch can't grow the slice
	// under us.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	for _, handler := range handlersCopy {
		handler(ev)
	}
}
