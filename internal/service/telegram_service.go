package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/codeacademypro/contactapi/internal/models"
)

const telegramAPIURL = "https://api.telegram.org"

// TelegramService sends a summary of each new contact to a Telegram chat
type TelegramService struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegramService creates a new Telegram notifier
func NewTelegramService(botToken, chatID string, timeout time.Duration) *TelegramService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIURL,
		client:   &http.Client{Timeout: timeout},
	}
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (s *TelegramService) Name() string {
	return "telegram"
}

// Notify sends the contact to the configured chat
func (s *TelegramService) Notify(ctx context.Context, contact *models.Contact) error {
	if s.botToken == "" || s.chatID == "" {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      formatContactMessage(contact),
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}

func formatContactMessage(c *models.Contact) string {
	return fmt.Sprintf(
		"<b>Nuevo contacto #%d</b>\n\n"+
			"<b>Nombre:</b> %s\n"+
			"<b>Correo:</b> %s\n"+
			"<b>Teléfono:</b> %s\n"+
			"<b>Mensaje:</b>\n%s",
		c.ID,
		html.EscapeString(c.Name),
		html.EscapeString(c.Email),
		html.EscapeString(c.Phone),
		html.EscapeString(c.Message),
	)
}
