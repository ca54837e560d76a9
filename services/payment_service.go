package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mummysboy/furnishandgo/models"
)

// PaymentClient authorizes charges against the payment gateway. The gateway
// is opaque to this service: one authorize call in, success with a reference
// or failure with a reason out.
type PaymentClient struct {
	gatewayURL string
	apiKey     string
	httpClient *http.Client
}

// NewPaymentClient creates a payment client for the given gateway.
func NewPaymentClient(gatewayURL, apiKey string) *PaymentClient {
	return &PaymentClient{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthorizationResult is the gateway's answer to an authorize call.
type AuthorizationResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Authorize requests a payment authorization. A declined payment is a normal
// result (Success false with a reason), not an error; errors mean the gateway
// could not be reached or answered garbage.
func (p *PaymentClient) Authorize(ctx context.Context, amount float64, currency string, billing models.BillingDetails) (*AuthorizationResult, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"billing": map[string]string{
			"name":     billing.Name,
			"email":    billing.Email,
			"address":  billing.Address,
			"city":     billing.City,
			"postcode": billing.Postcode,
			"country":  billing.Country,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.gatewayURL+"/v1/authorize", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment] gateway request failed: %v", err)
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[payment] gateway returned %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var result AuthorizationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if result.Success {
		log.Printf("[payment] authorized %.2f %s (ref %s)", amount, currency, result.Reference)
	} else {
		log.Printf("[payment] declined %.2f %s: %s", amount, currency, result.Reason)
	}

	return &result, nil
}
