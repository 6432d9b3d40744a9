package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is for messages that update a user's
	// spendable balance display.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceUpdatePayload is the payload for a balanceUpdate message.
type BalanceUpdatePayload struct {
	UserID     string `json:"user_id"`
	Change     int64  `json:"change"`
	NewBalance int64  `json:"new_balance"`
	Reason     string `json:"reason"`
}
