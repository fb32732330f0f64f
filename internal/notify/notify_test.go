package notify

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration/internal/config"
)

func TestNewSelectsTransport(t *testing.T) {
	m, err := New(config.MailConfig{Provider: config.ProviderNone})
	require.NoError(t, err)
	assert.IsType(t, NoopMailer{}, m)

	m, err = New(config.MailConfig{Provider: config.ProviderResend, ResendAPIKey: "re_test", From: "a@b.co"})
	require.NoError(t, err)
	assert.IsType(t, &ResendMailer{}, m)

	m, err = New(config.MailConfig{Provider: config.ProviderSMTP, SMTPHost: "smtp.example.com", From: "a@b.co"})
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	m, err = New(config.MailConfig{Provider: config.ProviderResend})
	require.Error(t, err)
	assert.Nil(t, m)

	_, err = New(config.MailConfig{Provider: "fax"})
	assert.Error(t, err)
}

func TestNoopMailerReportsDisabled(t *testing.T) {
	assert.ErrorIs(t, NoopMailer{}.Send(context.Background(), Message{To: "a@b.co"}), ErrDisabled)
}

func TestConfirmationEscapesName(t *testing.T) {
	msg, err := Confirmation("jane@example.com", "Jane <b>Doe</b>")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "Registration Confirmation", msg.Subject)
	assert.Contains(t, msg.HTML, "Welcome, Jane &lt;b&gt;Doe&lt;/b&gt;!")
	assert.NotContains(t, msg.HTML, "<b>")
}

func TestResendMailerSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	m, err := NewResendMailer("re_test", "Registration <no-reply@example.com>", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: "jane@example.com", Subject: "Hi", HTML: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "Registration <no-reply@example.com>", got.From)
	assert.Equal(t, "Hi", got.Subject)
	assert.Equal(t, "<p>x</p>", got.HTML)
}

func TestResendMailerSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	m, err := NewResendMailer("re_test", "a@b.co", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: "jane@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from")
}

func TestSMTPMailerRequiresHostAndFrom(t *testing.T) {
	_, err := NewSMTPMailer(SMTPConfig{From: "a@b.co"})
	assert.Error(t, err)

	_, err = NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"})
	assert.Error(t, err)

	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, 587, m.cfg.Port)
	assert.Equal(t, 10*time.Second, m.cfg.Timeout)
}

func TestSMTPMailerRejectsBadRecipient(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "a@b.co"})
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: "not an address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp to")
}

func TestSMTPMailerDialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	m, err := NewSMTPMailer(SMTPConfig{
		Host:    "127.0.0.1",
		Port:    port,
		From:    "a@b.co",
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = m.Send(ctx, Message{To: "jane@example.com", Subject: "Hi", HTML: "<p>x</p>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp send")
}
