package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"priyasi-storefront/internal/logger"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient sends mail through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewResendClient(apiKey string) (*ResendClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &ResendClient{
		apiKey:     apiKey,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "resend"))

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out resendResponse
	_ = json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("resend api returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", out.Message),
		)
		return "", fmt.Errorf("%w: resend status %d", ErrSendFailed, resp.StatusCode)
	}

	log.Info("email sent", zap.String("id", out.ID), zap.String("subject", msg.Subject))
	return out.ID, nil
}
