// internal/bot/messenger.go
package bot

import "context"

// Message is one inbound text message from the chat transport.
type Message struct {
	ChatID   int64
	SenderID int64
	Text     string
}

// Messenger is the chat transport the runner consumes. The production
// implementation lives in internal/telegram.
type Messenger interface {
	// Updates returns a channel of inbound text messages. The channel
	// closes when ctx is cancelled or the transport shuts down.
	Updates(ctx context.Context) <-chan Message

	// Send delivers a reply to a chat.
	Send(chatID int64, text string) error

	Close() error
}
