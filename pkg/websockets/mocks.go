package websockets

import "context"

// NoOpPublisher discards balance updates. It stands in for the real
// publisher in tests and in deployments without a WebSocket gateway.
type NoOpPublisher struct{}

// Publish drops the message.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
