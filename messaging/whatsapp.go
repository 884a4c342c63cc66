// Package messaging delivers patient notifications and live queue updates.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrSendFailed is returned when the WhatsApp API rejects a message.
var ErrSendFailed = errors.New("whatsapp send failed")

// Sender delivers a text message to a patient's phone.
type Sender interface {
	SendText(ctx context.Context, phone, body string) error
}

type textBody struct {
	Body string `json:"body"`
}

type textMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// WhatsAppClient posts text messages to the WhatsApp Cloud API.
type WhatsAppClient struct {
	http        *resty.Client
	url         string
	countryCode string
	log         zerolog.Logger
}

// NewWhatsAppClient returns a client posting to url. An empty url yields a
// client that logs and drops every message.
func NewWhatsAppClient(url, accessToken, countryCode string, log zerolog.Logger) *WhatsAppClient {
	client := resty.New().
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if accessToken != "" {
		client.SetAuthToken(accessToken)
	}
	return &WhatsAppClient{
		http:        client,
		url:         strings.TrimSpace(url),
		countryCode: strings.TrimPrefix(strings.TrimSpace(countryCode), "+"),
		log:         log.With().Str("component", "whatsapp").Logger(),
	}
}

// Enabled reports whether messages are actually sent.
func (c *WhatsAppClient) Enabled() bool {
	return c.url != ""
}

func (c *WhatsAppClient) recipient(phone string) string {
	if c.countryCode == "" || (len(phone) > 10 && strings.HasPrefix(phone, c.countryCode)) {
		return phone
	}
	return c.countryCode + phone
}

// SendText sends body to phone, prefixed with the configured country code.
func (c *WhatsAppClient) SendText(ctx context.Context, phone, body string) error {
	if !c.Enabled() {
		c.log.Debug().Str("phone", phone).Msg("whatsapp disabled, message dropped")
		return nil
	}

	msg := textMessage{
		MessagingProduct: "whatsapp",
		To:               c.recipient(phone),
		Type:             "text",
		Text:             textBody{Body: body},
	}

	var failure apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(msg).
		SetError(&failure).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp api: %w", err)
	}
	if resp.IsError() {
		c.log.Error().
			Int("status", resp.StatusCode()).
			Str("reason", failure.Error.Message).
			Msg("whatsapp api returned error")
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode(), failure.Error.Message)
	}
	return nil
}
