package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
)

// Provider delivers one SMS to a Nepali mobile number.
type Provider interface {
	Send(ctx context.Context, phone, text string) error
}

// NewProvider picks the provider from config. Anything unrecognized falls
// back to the log provider so local setups work without a gateway account.
func NewProvider(cfg *config.Config) Provider {
	switch cfg.SMS.Provider {
	case "gateway":
		return &GatewayProvider{
			url:   cfg.SMS.GatewayURL,
			token: cfg.SMS.Token,
			from:  cfg.SMS.From,
			client: &http.Client{
				Timeout: 10 * time.Second,
			},
		}
	default:
		return &LogProvider{}
	}
}

// LogProvider writes outgoing messages to the application log instead of
// sending them. Used in development and tests.
type LogProvider struct{}

func (p *LogProvider) Send(ctx context.Context, phone, text string) error {
	logger.CtxInfo(ctx, "sms (log provider)", "phone", phone, "text", text)
	return nil
}

// GatewayProvider posts messages to an HTTP SMS gateway.
type GatewayProvider struct {
	url    string
	token  string
	from   string
	client *http.Client
}

type gatewayPayload struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Text string `json:"text"`
}

func (p *GatewayProvider) Send(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(gatewayPayload{To: phone, From: p.from, Text: text})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}
