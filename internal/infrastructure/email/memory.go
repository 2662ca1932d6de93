package email

import (
	"context"
	"sync"
)

// MemoryTransport records envelopes instead of sending them.
type MemoryTransport struct {
	mu         sync.Mutex
	deliveries []*Envelope
}

func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{}
}

func (m *MemoryTransport) Send(_ context.Context, env *Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *env
	m.deliveries = append(m.deliveries, &copied)
	return nil
}

// Deliveries returns the envelopes sent so far, oldest first.
func (m *MemoryTransport) Deliveries() []*Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Envelope(nil), m.deliveries...)
}

func (m *MemoryTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveries = nil
}
