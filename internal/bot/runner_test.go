package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeMessenger feeds a fixed set of messages and records replies.
type fakeMessenger struct {
	mu       sync.Mutex
	inbound  []Message
	replies  map[int64][]string
	closed   bool
	replyLog []string
}

func newFakeMessenger(inbound ...Message) *fakeMessenger {
	return &fakeMessenger{
		inbound: inbound,
		replies: make(map[int64][]string),
	}
}

func (f *fakeMessenger) Updates(ctx context.Context) <-chan Message {
	out := make(chan Message)
	go func() {
		defer close(out)
		for _, msg := range f.inbound {
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (f *fakeMessenger) Send(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[chatID] = append(f.replies[chatID], text)
	f.replyLog = append(f.replyLog, text)
	return nil
}

func (f *fakeMessenger) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestRunner_RepliesToEveryMessage(t *testing.T) {
	messenger := newFakeMessenger(
		Message{ChatID: 1, SenderID: nonAdminID, Text: "/start"},
		Message{ChatID: 1, SenderID: nonAdminID, Text: "/setrate 50"},
		Message{ChatID: 2, SenderID: adminID, Text: "bogus"},
	)
	dispatcher, _ := newTestDispatcher(t, newFakeChain())
	runner := NewRunner(messenger, dispatcher, zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := runner.Run(ctx)
	require.NoError(t, err)

	messenger.mu.Lock()
	defer messenger.mu.Unlock()
	assert.Equal(t, []string{replyWelcome, replyNotAdmin}, messenger.replies[1])
	assert.Equal(t, []string{replyUnknownCommand}, messenger.replies[2])
	assert.True(t, messenger.closed)
}

func TestRunner_SequentialHandling(t *testing.T) {
	messenger := newFakeMessenger(
		Message{ChatID: 1, SenderID: adminID, Text: "/setrate 10"},
		Message{ChatID: 1, SenderID: nonAdminID, Text: "/sendusdt ADDR123 5"},
	)
	dispatcher, settings := newTestDispatcher(t, newFakeChain())
	runner := NewRunner(messenger, dispatcher, zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runner.Run(ctx))

	// The rate change is applied before the following swap is handled.
	assert.Equal(t, 10.0, settings.Rate())

	messenger.mu.Lock()
	defer messenger.mu.Unlock()
	require.Len(t, messenger.replyLog, 2)
	assert.Contains(t, messenger.replyLog[1], "50 TRX")
}
