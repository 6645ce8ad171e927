package mqtt

import (
	"context"
	"fmt"
	"sync"

	coremqtt "github.com/kilianp07/naukma-schedule/core/mqtt"
)

// Publisher mirrors the core mqtt.Publisher interface.
type Publisher = coremqtt.Publisher

// Message is a payload recorded by MockPublisher.
type Message struct {
	Topic    string
	Payload  []byte
	Retained bool
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	Messages []Message
	// FailTopics makes Publish fail for the listed topics.
	FailTopics   map[string]bool
	Disconnected bool
	mu           sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{FailTopics: make(map[string]bool)}
}

// Publish records the message or returns an error if configured to fail.
func (m *MockPublisher) Publish(_ context.Context, topic string, payload []byte, retained bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailTopics[topic] {
		return fmt.Errorf("%w: %s", coremqtt.ErrPublishFailed, topic)
	}
	m.Messages = append(m.Messages, Message{Topic: topic, Payload: payload, Retained: retained})
	return nil
}

// Disconnect marks the publisher closed.
func (m *MockPublisher) Disconnect() {
	m.mu.Lock()
	m.Disconnected = true
	m.mu.Unlock()
}
