// Package telegram sends notices through the cooperative's Telegram bot
// to members who linked their chat id in their profile.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiBase = "https://api.telegram.org"

type Client struct {
	token  string
	client *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiError is the failure half of a Bot API response.
type apiError struct {
	Description string `json:"description"`
}

// Send posts one plain-text message to the given chat.
func (c *Client) Send(chatID, msg string) error {
	return c.send(sendMessageRequest{
		ChatID:                chatID,
		Text:                  msg,
		DisableWebPagePreview: true,
	})
}

// SendHTML posts a message with Telegram HTML formatting. The caller is
// responsible for escaping user-provided text.
func (c *Client) SendHTML(chatID, msg string) error {
	return c.send(sendMessageRequest{
		ChatID:                chatID,
		Text:                  msg,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
}

func (c *Client) send(reqBody sendMessageRequest) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", apiBase, c.token)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(readBody(resp.Body), &apiErr); err == nil && apiErr.Description != "" {
			return fmt.Errorf("telegram API error: %s: %s", resp.Status, apiErr.Description)
		}

		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}

func readBody(r io.Reader) []byte {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return nil
	}

	return b
}
