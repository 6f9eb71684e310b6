package usecase

import (
	"encoding/json"
	"regexp"
	"testing"

	"estatehub/config"
	"estatehub/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideWebhookAction(t *testing.T) {
	pending := &entity.Payment{Status: entity.ProviderStatusPending}
	settled := &entity.Payment{Status: entity.ProviderStatusSuccess}
	failed := &entity.Payment{Status: entity.ProviderStatusFailed}

	tests := []struct {
		name    string
		event   string
		payment *entity.Payment
		want    webhookAction
	}{
		{"success settles a pending payment", "charge.success", pending, webhookSettle},
		{"replayed success is a no-op", "charge.success", settled, webhookIgnore},
		{"replayed failure after settlement is a no-op", "charge.failed", settled, webhookIgnore},
		{"failure marks a pending payment", "charge.failed", pending, webhookMarkFailed},
		{"success may retry a failed charge", "charge.success", failed, webhookSettle},
		{"unknown payment is ignored", "charge.success", nil, webhookIgnore},
		{"unrelated event is ignored", "transfer.success", pending, webhookIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &webhookEvent{Event: tt.event}
			assert.Equal(t, tt.want, decideWebhookAction(event, tt.payment))
		})
	}
}

func TestWebhookEventParsing(t *testing.T) {
	body := []byte(`{
		"event": "charge.success",
		"data": {
			"reference": "ESTATE_1712000000000_abcd1234",
			"status": "success",
			"paid_at": "2026-04-01T10:00:00Z",
			"metadata": {"payment_id": "4e6f7b52-9f5a-4f9e-8f64-8a2b5c1d0e9f"}
		}
	}`)

	var event webhookEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, "charge.success", event.Event)
	assert.Equal(t, "ESTATE_1712000000000_abcd1234", event.Data.Reference)
	assert.Equal(t, "2026-04-01T10:00:00Z", event.Data.PaidAt)
	assert.Equal(t, "4e6f7b52-9f5a-4f9e-8f64-8a2b5c1d0e9f", event.Data.Metadata["payment_id"])
}

func TestRentalAmount(t *testing.T) {
	tests := []struct {
		name string
		rent string
		want string
	}{
		{"round figure", "100000", "260000"},
		{"small rent", "1000", "12500"},
		{"fractional product rounds", "333", "10833"},
		{"zero rent is fee only", "0", "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rent, err := decimal.NewFromString(tt.rent)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, rentalAmount(rent).String())
		})
	}
}

func TestApplyTestCap(t *testing.T) {
	newUsecase := func(env string, ceiling int64) *paymentUsecase {
		return &paymentUsecase{cfg: &config.Config{
			App:      config.AppConfig{Env: env},
			Paystack: config.PaystackConfig{TestAmountCap: ceiling},
		}}
	}

	amount := decimal.NewFromInt(5_000_000)

	t.Run("caps in development", func(t *testing.T) {
		u := newUsecase("development", 100_000)
		assert.Equal(t, "100000", u.applyTestCap(amount).String())
	})

	t.Run("amount below cap passes through", func(t *testing.T) {
		u := newUsecase("development", 100_000)
		small := decimal.NewFromInt(50_000)
		assert.Equal(t, "50000", u.applyTestCap(small).String())
	})

	t.Run("disabled outside development", func(t *testing.T) {
		u := newUsecase("production", 100_000)
		assert.Equal(t, "5000000", u.applyTestCap(amount).String())
	})

	t.Run("zero cap disables capping", func(t *testing.T) {
		u := newUsecase("development", 0)
		assert.Equal(t, "5000000", u.applyTestCap(amount).String())
	})
}

func TestGenerateReference(t *testing.T) {
	pattern := regexp.MustCompile(`^ESTATE_\d+_[0-9a-f]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := generateReference()
		assert.Regexp(t, pattern, ref)
		assert.False(t, seen[ref], "reference %s generated twice", ref)
		seen[ref] = true
	}
}
