package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmailClient cliente de la API de email transaccional (estilo Resend:
// POST JSON con Bearer key).
type EmailClient struct {
	url        string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewEmailClient construye el cliente. Con apiKey vacía queda en modo no-op.
func NewEmailClient(url, apiKey, from string) *EmailClient {
	return &EmailClient{
		url:        url,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send envía un email transaccional.
func (c *EmailClient) Send(ctx context.Context, to, subject, html string) error {
	if c.apiKey == "" {
		return nil
	}
	body, err := json.Marshal(emailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("serializar email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request email: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar email: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API de email respondió %d: %s", resp.StatusCode, msg)
	}
	return nil
}
