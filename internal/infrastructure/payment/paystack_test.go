package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estatehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"ESTATE_1_abcd1234"}}`)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, VerifyWebhookSignature(secret, body, sign(secret, body)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(secret, body, sign("sk_other", body)))
	})

	t.Run("tampered body", func(t *testing.T) {
		signature := sign(secret, body)
		tampered := append([]byte(nil), body...)
		tampered[len(tampered)-2] = 'X'
		assert.False(t, VerifyWebhookSignature(secret, tampered, signature))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifyWebhookSignature(secret, body, ""))
	})
}

func newTestClient(baseURL string) *PaystackClient {
	return NewPaystackClient(config.PaystackConfig{
		SecretKey: "sk_test_secret",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
	})
}

func TestInitializeTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

			var req InitializeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "buyer@example.com", req.Email)
			assert.Equal(t, int64(25_000_000), req.Amount)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  true,
				"message": "Authorization URL created",
				"data": map[string]string{
					"authorization_url": "https://checkout.paystack.com/abc123",
					"access_code":       "abc123",
					"reference":         req.Reference,
				},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		resp, err := client.InitializeTransaction(context.Background(), &InitializeRequest{
			Email:     "buyer@example.com",
			Amount:    25_000_000,
			Reference: "ESTATE_1_abcd1234",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc123", resp.Data.AuthorizationURL)
		assert.Equal(t, "ESTATE_1_abcd1234", resp.Data.Reference)
	})

	t.Run("provider rejects the charge", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  false,
				"message": "Invalid amount",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.InitializeTransaction(context.Background(), &InitializeRequest{
			Email:  "buyer@example.com",
			Amount: -1,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid amount")
	})

	t.Run("missing authorization url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  true,
				"message": "ok",
				"data":    map[string]string{},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.InitializeTransaction(context.Background(), &InitializeRequest{
			Email:  "buyer@example.com",
			Amount: 1000,
		})

		require.Error(t, err)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")
		_, err := client.InitializeTransaction(context.Background(), &InitializeRequest{
			Email:  "buyer@example.com",
			Amount: 1000,
		})
		require.Error(t, err)
	})
}

func TestClientVerifySignature(t *testing.T) {
	client := newTestClient("https://api.paystack.co")
	body := []byte(`{"event":"charge.success"}`)
	assert.True(t, client.VerifySignature(body, sign("sk_test_secret", body)))
	assert.False(t, client.VerifySignature(body, sign("sk_wrong", body)))
}
