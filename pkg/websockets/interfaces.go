package websockets

import (
	"context"
)

// ConnectionManager tracks the WebSocket connections of signed-in investors
// so balance updates can be pushed to them.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher pushes balance-update messages to connected investors.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
