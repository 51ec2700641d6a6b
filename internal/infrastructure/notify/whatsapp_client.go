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

// WhatsAppClient cliente del relay de mensajería saliente. El relay expone un
// endpoint simple: POST {telefono, mensaje} con Bearer token.
type WhatsAppClient struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewWhatsAppClient construye el cliente. Con url vacía queda en modo no-op.
func NewWhatsAppClient(url, token string) *WhatsAppClient {
	return &WhatsAppClient{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type outboundMessage struct {
	Telefono string `json:"telefono"`
	Mensaje  string `json:"mensaje"`
}

// SendText envía un mensaje de texto al teléfono indicado.
func (c *WhatsAppClient) SendText(ctx context.Context, telefono, mensaje string) error {
	if c.url == "" {
		return nil
	}
	body, err := json.Marshal(outboundMessage{Telefono: telefono, Mensaje: mensaje})
	if err != nil {
		return fmt.Errorf("serializar mensaje: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request whatsapp: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar mensaje saliente: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay de mensajería respondió %d: %s", resp.StatusCode, msg)
	}
	return nil
}
