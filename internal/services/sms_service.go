package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
)

// ErrSMSDispatch wraps any failure talking to the SMS gateway. DB writes
// that preceded dispatch are never rolled back because of it.
var ErrSMSDispatch = errors.New("sms dispatch failed")

// SMSSender dispatches a text message to a phone number.
type SMSSender interface {
	Send(number, message string) error
}

// BulkSMSClient talks to the bulk SMS gateway's form-style HTTP endpoint.
type BulkSMSClient struct {
	apiURL     string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

func NewBulkSMSClient(cfg *config.Config) *BulkSMSClient {
	return &BulkSMSClient{
		apiURL:     cfg.SMSAPIURL,
		apiKey:     cfg.SMSAPIKey,
		senderID:   cfg.SMSSenderID,
		httpClient: &http.Client{Timeout: cfg.SMSTimeout},
	}
}

func (c *BulkSMSClient) Send(number, message string) error {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("type", "text")
	q.Set("number", number)
	q.Set("senderid", c.senderID)
	q.Set("message", message)

	req, err := http.NewRequest(http.MethodPost, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSMSDispatch, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSMSDispatch, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: gateway returned status %d", ErrSMSDispatch, resp.StatusCode)
	}
	return nil
}
