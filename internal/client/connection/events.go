package connection

import "github.com/yourusername/cheesecake-chat/internal/protocol"

// Event represents events from the connection manager
type Event interface {
	isEvent()
}

// ReplyEvent is sent when /chat answered a turn
type ReplyEvent struct {
	PlaceholderID string
	Response      *protocol.ChatResponse
}

func (ReplyEvent) isEvent() {}

// FailedEvent is sent when a turn could not be answered
type FailedEvent struct {
	PlaceholderID string
	Err           error
}

func (FailedEvent) isEvent() {}
