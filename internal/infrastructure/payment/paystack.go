package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"estatehub/config"
)

// PaystackClient is a thin wrapper over the Paystack REST API. Every call
// runs with the configured timeout so a slow provider cannot pin a request.
type PaystackClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewPaystackClient(cfg config.PaystackConfig) *PaystackClient {
	return &PaystackClient{
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// InitializeRequest is the payload for /transaction/initialize. Amount is in
// the currency's smallest unit (kobo for NGN).
type InitializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type InitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitializeTransaction creates a charge and returns the redirect URL the
// client should be sent to.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, req *InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp InitializeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("paystack error: %s", resp.Message)
	}
	if resp.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack returned no authorization URL")
	}

	return &resp, nil
}

// VerifySignature checks the x-paystack-signature header against an
// HMAC-SHA512 of the raw request body. The hash must be computed over the
// exact bytes received; re-serializing a parsed payload breaks equality.
func (c *PaystackClient) VerifySignature(rawBody []byte, signature string) bool {
	return VerifyWebhookSignature(c.secretKey, rawBody, signature)
}

// VerifyWebhookSignature is the keyed-hash comparison behind VerifySignature,
// split out so it can be exercised without a client.
func VerifyWebhookSignature(secretKey string, rawBody []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
