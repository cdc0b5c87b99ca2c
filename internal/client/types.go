package client

import (
	"context"
	"time"
)

// Update представляет обновление от Telegram.
type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message представляет сообщение.
type Message struct {
	MessageID int    `json:"message_id"`
	From      *User  `json:"from"`
	Chat      *Chat  `json:"chat"`
	Text      string `json:"text"`
}

// User представляет пользователя Telegram.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Chat представляет чат.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SendOptions содержит опции отправки сообщения.
type SendOptions struct {
	ParseMode string `json:"parse_mode,omitempty"`
}

// Client определяет интерфейс Telegram клиента.
type Client interface {
	// SendMessage отправляет сообщение.
	SendMessage(ctx context.Context, chatID int64, text string, opts *SendOptions) (*Message, error)

	// GetUpdates получает обновления (long polling).
	GetUpdates(ctx context.Context, offset int, timeout int) ([]Update, error)
}

// Таймаут отправки поверх long polling таймаута.
const timeoutSend = 3 * time.Second
