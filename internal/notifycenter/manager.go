package notifycenter

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Manager hands out one center per signed-in user. Centers are created
// lazily on first use and live until Close. Binding a center to an
// explicit user id (rather than reading a process-wide current user)
// keeps session swaps observable: a new user id means a fresh
// Initialize, which cancels the previous subscription.
type Manager struct {
	gateway Gateway
	feed    Feed

	mu      sync.Mutex
	centers map[uuid.UUID]*Center
}

func NewManager(gateway Gateway, feed Feed) *Manager {
	return &Manager{
		gateway: gateway,
		feed:    feed,
		centers: make(map[uuid.UUID]*Center),
	}
}

// For returns the center for userID, initializing it on first use.
func (m *Manager) For(ctx context.Context, userID uuid.UUID) (*Center, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("center manager: user id is required")
	}

	m.mu.Lock()
	c, ok := m.centers[userID]
	if !ok {
		c = New(m.gateway, m.feed)
		m.centers[userID] = c
	}
	m.mu.Unlock()

	if !ok {
		if err := c.Initialize(ctx, userID); err != nil {
			m.mu.Lock()
			delete(m.centers, userID)
			m.mu.Unlock()
			return nil, err
		}
	}

	return c, nil
}

// Release closes and forgets the center for userID, if any. Called on
// logout.
func (m *Manager) Release(userID uuid.UUID) {
	m.mu.Lock()
	c, ok := m.centers[userID]
	delete(m.centers, userID)
	m.mu.Unlock()

	if ok {
		c.Close()
	}
}

// Close tears down every center.
func (m *Manager) Close() {
	m.mu.Lock()
	centers := m.centers
	m.centers = make(map[uuid.UUID]*Center)
	m.mu.Unlock()

	for _, c := range centers {
		c.Close()
	}
}
