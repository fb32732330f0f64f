package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendMailer delivers through the Resend HTTP API.
type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

type ResendOption func(*ResendMailer)

func WithBaseURL(u string) ResendOption {
	return func(m *ResendMailer) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			m.baseURL = u
		}
	}
}

func WithHTTPClient(c *http.Client) ResendOption {
	return func(m *ResendMailer) { m.client = c }
}

func NewResendMailer(apiKey, from string, opts ...ResendOption) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}
	if from == "" {
		return nil, errors.New("MAIL_FROM not set")
	}

	m := &ResendMailer{
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultResendBaseURL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	b, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("resend: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}
