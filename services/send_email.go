package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/celestialmindworks/site-backend/config"
)

// ResendEmailRequest represents the request payload for the Resend API.
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API.
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API.
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// Mailer sends email through the Resend API with credentials taken from the
// injected configuration at construction time.
type Mailer struct {
	apiKey string
	from   string
	client *http.Client
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		apiKey: cfg.MailAPIKey,
		from:   cfg.MailFrom,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers a plain-text email to the given recipients.
func (m *Mailer) Send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.apiKey == "" {
		return fmt.Errorf("MAIL_API_KEY is not configured")
	}
	if m.from == "" {
		return fmt.Errorf("MAIL_FROM is not configured")
	}

	payload := ResendEmailRequest{
		From:    m.from,
		To:      recipients,
		Subject: subject,
		Text:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("Resend API error (status %d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("Resend API returned status %d", resp.StatusCode)
	}

	return nil
}
