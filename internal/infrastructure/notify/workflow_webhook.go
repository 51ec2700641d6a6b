// Package notify contiene los clientes HTTP hacia los colaboradores externos:
// el webhook de automatización de flujos, la API de email transaccional y el
// relay de mensajería saliente. Todos usan net/http con timeout; ninguno
// reintenta: un fallo se registra y se convierte en error del caso de uso.
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

// WorkflowWebhookClient entrega las capturas de leads al webhook de
// automatización (en producción, un flujo de n8n).
type WorkflowWebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWorkflowWebhookClient construye el cliente. Con url vacía el cliente
// queda en modo no-op (entorno local sin automatización).
func NewWorkflowWebhookClient(url string) *WorkflowWebhookClient {
	return &WorkflowWebhookClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ForwardCapture envía el payload de captura como JSON. El payload llega tal
// cual lo construyó el caso de uso, con los defaults ya aplicados.
func (c *WorkflowWebhookClient) ForwardCapture(ctx context.Context, payload any) error {
	if c.url == "" {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar captura: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar captura al webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook respondió %d: %s", resp.StatusCode, msg)
	}
	return nil
}
