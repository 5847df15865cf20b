// Package notify delivers outbound messages (summary pushes and the like)
// through a swappable transport. The concrete variant is chosen once at
// startup from configuration and injected into the services.
package notify

import "sync"

// Notifier sends a message to a destination. What the destination means
// depends on the variant: a chat ID for Telegram, an address for SMTP.
type Notifier interface {
	Send(destination, message string) error
}

// MockNotifier records messages instead of delivering them. Used in tests and
// as the explicit no-op driver.
type MockNotifier struct {
	mu   sync.Mutex
	sent []SentMessage
}

type SentMessage struct {
	Destination string
	Message     string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(destination, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMessage{Destination: destination, Message: message})
	return nil
}

// Sent returns a copy of everything recorded so far.
func (m *MockNotifier) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
