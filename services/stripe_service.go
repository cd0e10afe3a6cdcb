package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tipdesk/config"
	"tipdesk/models"
)

// StripeConfig holds the payment processor credentials.
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
	Currency       string
}

// StripeService talks to the Stripe REST API directly: one endpoint to
// create a tip payment intent, one to poll its status, plus webhook
// signature verification. No SDK; the surface used here is tiny.
type StripeService struct {
	config     *StripeConfig
	httpClient *http.Client
	baseURL    string
}

var (
	stripeService *StripeService
	stripeOnce    sync.Once
)

// GetStripeService returns the shared processor client. The first call
// fixes the credentials; later calls ignore their argument.
func GetStripeService(cfg config.StripeConfig) *StripeService {
	stripeOnce.Do(func() {
		currency := cfg.Currency
		if currency == "" {
			currency = "usd"
		}
		stripeService = &StripeService{
			config: &StripeConfig{
				SecretKey:      cfg.SecretKey,
				PublishableKey: cfg.PublishableKey,
				WebhookSecret:  cfg.WebhookSecret,
				Currency:       currency,
			},
			httpClient: &http.Client{Timeout: 30 * time.Second},
			baseURL:    "https://api.stripe.com",
		}
	})
	return stripeService
}

// ValidateConfig checks that every required credential is present.
func (ss *StripeService) ValidateConfig() error {
	if ss.config.SecretKey == "" {
		return fmt.Errorf("TIPDESK_STRIPE_SECRET_KEY is not set")
	}
	if ss.config.PublishableKey == "" {
		return fmt.Errorf("TIPDESK_STRIPE_PUBLISHABLE_KEY is not set")
	}
	if ss.config.WebhookSecret == "" {
		return fmt.Errorf("TIPDESK_STRIPE_WEBHOOK_SECRET is not set")
	}
	return nil
}

// PublishableKey is exposed to the tip page for client-side confirmation.
func (ss *StripeService) PublishableKey() string {
	return ss.config.PublishableKey
}

// IntentResponse is the slice of the payment intent object the console
// cares about.
type IntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateTipIntent registers a payment intent for one tip. Amount is in
// the hotel's currency; Stripe wants minor units.
func (ss *StripeService) CreateTipIntent(tip models.Tip) (*IntentResponse, error) {
	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", int64(tip.Amount*100)))
	form.Set("currency", ss.config.Currency)
	form.Set("description", fmt.Sprintf("Tip for room %d", tip.RoomID))
	form.Set("metadata[reference_id]", tip.ReferenceID)
	form.Set("metadata[staff_id]", fmt.Sprintf("%d", tip.StaffID))
	form.Set("metadata[room_id]", fmt.Sprintf("%d", tip.RoomID))

	req, err := http.NewRequest("POST", ss.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+ss.config.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling payment processor: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading processor response: %v", err)
	}

	var intent IntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("error parsing processor response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if intent.Error != nil {
			return nil, fmt.Errorf("payment processor error: %s", intent.Error.Message)
		}
		return nil, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}
	return &intent, nil
}

// CheckIntentStatus polls an intent and maps the processor status onto
// the tip statuses (pending / success / failed).
func (ss *StripeService) CheckIntentStatus(intentID string) (string, error) {
	req, err := http.NewRequest("GET", ss.baseURL+"/v1/payment_intents/"+intentID, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+ss.config.SecretKey)

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling payment processor: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading processor response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent IntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("error parsing processor response: %v", err)
	}
	return MapIntentStatus(intent.Status), nil
}

// MapIntentStatus collapses Stripe's intent statuses onto tip statuses.
func MapIntentStatus(status string) string {
	switch status {
	case "succeeded":
		return "success"
	case "canceled":
		return "failed"
	default:
		// requires_payment_method, requires_confirmation, processing, ...
		return "pending"
	}
}

// VerifyWebhookSignature checks a Stripe-Signature header
// ("t=<ts>,v1=<hmac>") against the payload using the webhook secret.
func (ss *StripeService) VerifyWebhookSignature(payload []byte, header string) bool {
	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signature = kv[1]
		}
	}
	if timestamp == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(ss.config.WebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
