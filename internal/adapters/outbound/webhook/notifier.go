package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	signatureHeader = "X-Marketplace-Signature"
	eventTypeHeader = "X-Marketplace-Event"
)

// Notifier implements domain.WebhookNotifier by POSTing event payloads to a
// configured endpoint, signed with a shared HMAC-SHA256 secret.
type Notifier struct {
	httpClient *http.Client
	endpoint   string
	secret     string
}

// NewNotifier creates a new instance of Notifier.
func NewNotifier(httpClient *http.Client, endpoint, secret string) Notifier {
	return Notifier{
		httpClient: httpClient,
		endpoint:   endpoint,
		secret:     secret,
	}
}

// Enabled reports whether an endpoint is configured.
func (n Notifier) Enabled() bool {
	return n.endpoint != "-" && n.endpoint != ""
}

// Notify delivers the event payload to the webhook endpoint. A disabled
// notifier accepts everything silently.
func (n Notifier) Notify(ctx context.Context, eventType domain.EventType, payload []byte) error {
	if !n.Enabled() {
		return nil
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req, err := http.NewRequestWithContext(spanCtx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(eventTypeHeader, string(eventType))
	req.Header.Set(signatureHeader, n.sign(payload))

	resp, err := n.httpClient.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	return nil
}

func (n Notifier) sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(n.secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// InitNotifier initializes the WebhookNotifier implementation.
type InitNotifier struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	Endpoint   string       `config:"WEBHOOK_ENDPOINT" default:"-"`
	Secret     string       `config:"WEBHOOK_SECRET" default:""`
}

// Initialize registers the Notifier as the implementation of WebhookNotifier.
func (in InitNotifier) Initialize(ctx context.Context) (context.Context, error) {
	notifier := NewNotifier(in.HttpClient, in.Endpoint, in.Secret)
	if !notifier.Enabled() {
		in.Logger.Println("InitNotifier: no webhook endpoint configured, notifications disabled")
	}
	depend.Register[domain.WebhookNotifier](notifier)
	return ctx, nil
}
