// Package telegram forwards received submissions to the nursery staff chat
// via the Bot API, replacing the widget bot's notification path.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kitten-shop/internal/platform/httpclient"
	"kitten-shop/internal/platform/logger"
)

const defaultAPIBase = "https://api.telegram.org"

var (
	ErrNotConfigured = errors.New("telegram client not configured")
)

type Config struct {
	BotToken    string
	AdminChatID string
	GroupChatID string // optional second recipient

	// APIBase overrides the Bot API host (for tests).
	APIBase string
	Timeout time.Duration
}

type Client struct {
	client  *httpclient.Client
	token   string
	chatIDs []string
	log     logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.APIBase)
	if base == "" {
		base = defaultAPIBase
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	chatIDs := make([]string, 0, 2)
	for _, id := range []string{cfg.AdminChatID, cfg.GroupChatID} {
		if strings.TrimSpace(id) != "" {
			chatIDs = append(chatIDs, strings.TrimSpace(id))
		}
	}

	return &Client{
		client:  hc,
		token:   strings.TrimSpace(cfg.BotToken),
		chatIDs: chatIDs,
		log:     log,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.token != "" && len(c.chatIDs) > 0
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// broadcast sends the HTML message to every configured chat. A failure for
// one chat does not stop the others; the last error is returned.
func (c *Client) broadcast(ctx context.Context, html string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	path := "/bot" + c.token + "/sendMessage"

	var lastErr error
	for _, chatID := range c.chatIDs {
		req := sendMessageRequest{
			ChatID:    chatID,
			Text:      html,
			ParseMode: "HTML",
		}
		if err := c.client.DoJSON(ctx, http.MethodPost, path, nil, req, nil); err != nil {
			c.log.Error("telegram notify failed", map[string]any{
				"chat_id": chatID,
				"error":   err.Error(),
			})
			lastErr = fmt.Errorf("notify chat %s: %w", chatID, err)
		}
	}
	return lastErr
}
