package webpush

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"push-server/internal/observability"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Credentials scope a send to one site's VAPID keypair. Push services verify
// the payload against the keypair the browser subscribed under, so credentials
// always travel with the send rather than living on the client.
type Credentials struct {
	Subscriber string
	PublicKey  string
	PrivateKey string
}

// Keys are a subscription's encryption keys.
type Keys struct {
	P256dh string
	Auth   string
}

// SendError is a push-service level failure carrying the response status.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("push service returned status %d: %s", e.StatusCode, e.Body)
}

// Permanent reports whether the endpoint is gone for good. 410 is the
// canonical signal; push services also answer 404 for subscriptions that no
// longer exist, and both mean the endpoint will never accept another send.
func (e *SendError) Permanent() bool {
	return e.StatusCode == http.StatusGone || e.StatusCode == http.StatusNotFound
}

// Client sends web-push notifications with per-site VAPID credentials.
type Client struct {
	httpClient *http.Client
	ttl        int
	subscriber string
	logger     *observability.Logger
}

// NewClient creates a web-push client. The HTTP timeout bounds a single send
// attempt so a hung push service cannot wedge a dispatch batch. The subscriber
// is the operator contact sent in the VAPID JWT when a site has no contact
// address of its own.
func NewClient(ttlSeconds int, sendTimeout time.Duration, subscriber string, logger *observability.Logger) *Client {
	if ttlSeconds <= 0 {
		ttlSeconds = 86400
	}
	if sendTimeout <= 0 {
		sendTimeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: sendTimeout},
		ttl:        ttlSeconds,
		subscriber: subscriber,
		logger:     logger,
	}
}

// Send pushes one payload to one endpoint. A non-2xx answer from the push
// service is returned as *SendError so callers can classify permanence.
func (c *Client) Send(ctx context.Context, creds Credentials, endpoint string, keys Keys, payload []byte) error {
	subscriber := creds.Subscriber
	if subscriber == "" {
		subscriber = c.subscriber
	}

	sub := &webpush.Subscription{
		Endpoint: endpoint,
		Keys: webpush.Keys{
			P256dh: keys.P256dh,
			Auth:   keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &webpush.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      subscriber,
		VAPIDPublicKey:  creds.PublicKey,
		VAPIDPrivateKey: creds.PrivateKey,
		TTL:             c.ttl,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SendError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// GenerateKeys creates a fresh VAPID keypair for a new site.
func GenerateKeys() (publicKey, privateKey string, err error) {
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate VAPID keys: %w", err)
	}
	return publicKey, privateKey, nil
}
