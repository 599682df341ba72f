package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/qaspilab/qaspilab/internal/model"
)

// MessageSender is the part of *bot.Bot the notifier uses.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// NewTelegramBot creates a send-only bot client. The token is not checked
// against Telegram until the first message.
func NewTelegramBot(token string) (*bot.Bot, error) {
	if token == "" {
		return nil, errors.New("telegram token is required")
	}
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return b, nil
}

// TelegramNotifier sends ideas to a Telegram chat.
type TelegramNotifier struct {
	sender   MessageSender
	chatID   any
	location *time.Location
}

// NewTelegramNotifier creates a notifier for chatID, which is either a numeric
// chat id or a "@channel" username.
func NewTelegramNotifier(sender MessageSender, chatID string, loc *time.Location) (*TelegramNotifier, error) {
	if sender == nil {
		return nil, errors.New("telegram sender is required")
	}
	if chatID == "" {
		return nil, errors.New("telegram chat id is required")
	}

	var target any = chatID
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		target = id
	}

	return &TelegramNotifier{sender: sender, chatID: target, location: loc}, nil
}

// Name identifies the notifier in logs.
func (n *TelegramNotifier) Name() string {
	return "telegram"
}

// Notify sends the rendered idea as a plain text message.
func (n *TelegramNotifier) Notify(ctx context.Context, idea *model.Idea) error {
	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   RenderMessage(idea, n.location),
	})
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
