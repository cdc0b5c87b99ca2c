package sender

import (
	"context"

	"github.com/letsssgooo/testBot/internal/client"
)

// Sender определяет основной интерфейс для отправки сообщений.
type Sender interface {
	// Message отправляет текстовое сообщение.
	Message(ctx context.Context, chatID int64, text string, opts *client.SendOptions) (*client.Message, error)
}

// TelegramSender реализует отправку сообщений через Telegram Bot API.
type TelegramSender struct {
	client client.Client
}

// NewTelegramSender создает новый объект структуры TelegramSender.
func NewTelegramSender(client client.Client) *TelegramSender {
	return &TelegramSender{client: client}
}

// Message отправляет текстовое сообщение.
func (s *TelegramSender) Message(ctx context.Context, chatID int64, text string, opts *client.SendOptions) (*client.Message, error) {
	return s.client.SendMessage(ctx, chatID, text, opts)
}
