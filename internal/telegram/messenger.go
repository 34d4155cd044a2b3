// internal/telegram/messenger.go
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rmagomedov/tron-exchange-bot/internal/bot"
)

// pollTimeout is the long-poll timeout in seconds for getUpdates.
const pollTimeout = 30

// Messenger implements bot.Messenger over the Telegram Bot API using
// long polling.
type Messenger struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

var _ bot.Messenger = (*Messenger)(nil)

func New(token string, logger *zap.Logger) (*Messenger, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}

	logger = logger.Named("telegram")
	logger.Info("🤖 Authorized on Telegram", zap.String("username", api.Self.UserName))

	return &Messenger{
		api:    api,
		logger: logger,
	}, nil
}

// Updates returns a channel of inbound text messages. Non-text updates
// (stickers, photos, joins) are dropped here; command routing happens
// downstream.
func (m *Messenger) Updates(ctx context.Context) <-chan bot.Message {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeout

	updates := m.api.GetUpdatesChan(cfg)
	out := make(chan bot.Message)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				m.api.StopReceivingUpdates()
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Message == nil || update.Message.Text == "" {
					continue
				}
				msg := bot.Message{
					ChatID: update.Message.Chat.ID,
					Text:   update.Message.Text,
				}
				if update.Message.From != nil {
					msg.SenderID = update.Message.From.ID
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					m.api.StopReceivingUpdates()
					return
				}
			}
		}
	}()

	return out
}

func (m *Messenger) Send(chatID int64, text string) error {
	if _, err := m.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

func (m *Messenger) Close() error {
	m.api.StopReceivingUpdates()
	return nil
}
