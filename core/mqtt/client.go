package mqtt

import "context"

// Publisher sends payloads to an MQTT broker.
type Publisher interface {
	// Publish sends payload to topic. Retained messages are kept by the
	// broker and delivered to late subscribers.
	Publish(ctx context.Context, topic string, payload []byte, retained bool) error
	Disconnect()
}
