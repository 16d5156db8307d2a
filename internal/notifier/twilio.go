package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

// TwilioConfig holds the provider credentials and sender address.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string

	// BaseURL overrides the Twilio API host; empty means production.
	BaseURL string

	HTTPTimeout time.Duration
}

// TwilioNotifier sends SMS through the Twilio Messages API.
type TwilioNotifier struct {
	client  *http.Client
	baseURL string
	sid     string
	token   string
	from    string
}

func NewTwilioNotifier(cfg TwilioConfig) *TwilioNotifier {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}

	return &TwilioNotifier{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		sid:     cfg.AccountSID,
		token:   cfg.AuthToken,
		from:    cfg.FromNumber,
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (n *TwilioNotifier) Send(ctx context.Context, to, body string) (Receipt, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", n.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.sid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.sid, n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		return Receipt{}, err
	}
	defer resp.Body.Close()

	var decoded twilioResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Receipt{}, fmt.Errorf("decode provider response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return Receipt{}, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, decoded.Message)
	}

	return Receipt{
		ProviderID: decoded.SID,
		SentAt:     time.Now().UTC(),
	}, nil
}
