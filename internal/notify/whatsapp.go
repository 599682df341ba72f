package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qaspilab/qaspilab/internal/model"
)

// WhatsAppConfig addresses a Green API instance and the target chat.
type WhatsAppConfig struct {
	APIURL     string
	InstanceID string
	Token      string
	ChatID     string // e.g. "120363000000000000@g.us" for a group
}

// WhatsAppNotifier sends ideas through the Green API sendMessage method.
type WhatsAppNotifier struct {
	cfg      WhatsAppConfig
	location *time.Location
	http     *http.Client
}

// NewWhatsAppNotifier validates cfg and creates a notifier.
// Message timestamps are rendered in loc.
func NewWhatsAppNotifier(cfg WhatsAppConfig, loc *time.Location, client *http.Client) (*WhatsAppNotifier, error) {
	switch {
	case cfg.APIURL == "":
		return nil, errors.New("green api url is required")
	case cfg.InstanceID == "":
		return nil, errors.New("green api instance id is required")
	case cfg.Token == "":
		return nil, errors.New("green api token is required")
	case cfg.ChatID == "":
		return nil, errors.New("whatsapp chat id is required")
	}
	if client == nil {
		client = &http.Client{}
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &WhatsAppNotifier{cfg: cfg, location: loc, http: client}, nil
}

// Name identifies the notifier in logs.
func (n *WhatsAppNotifier) Name() string {
	return "whatsapp"
}

type sendMessageRequest struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type sendMessageResponse struct {
	IDMessage string `json:"idMessage"`
}

// Notify posts the rendered idea to the configured chat.
func (n *WhatsAppNotifier) Notify(ctx context.Context, idea *model.Idea) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:  n.cfg.ChatID,
		Message: RenderMessage(idea, n.location),
	})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send message: unexpected status %d", resp.StatusCode)
	}

	var out sendMessageResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if out.IDMessage == "" {
		return errors.New("send message: empty message id")
	}
	return nil
}

func (n *WhatsAppNotifier) endpoint() string {
	return fmt.Sprintf("%s/waInstance%s/sendMessage/%s", n.cfg.APIURL, n.cfg.InstanceID, n.cfg.Token)
}
