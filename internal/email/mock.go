package email

import (
	"context"
	"sync"
)

// MockSender implements Sender for testing. It records every message and
// can be configured to fail.
type MockSender struct {
	mu       sync.Mutex
	Sent     []*Email
	SendFunc func(ctx context.Context, email *Email) (string, error)
}

// Send records the email, delegating to SendFunc when set.
func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendFunc != nil {
		id, err := m.SendFunc(ctx, email)
		if err != nil {
			return "", err
		}
		m.Sent = append(m.Sent, email)
		return id, nil
	}

	m.Sent = append(m.Sent, email)
	return "mock-message-id", nil
}
