package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/usecase"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPaymentUsecase struct {
	webhookErr   error
	gotBody      []byte
	gotSignature string
}

func (s *stubPaymentUsecase) InitializePayment(ctx context.Context, bookingID uuid.UUID, req *dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	s.gotBody = rawBody
	s.gotSignature = signature
	return s.webhookErr
}

func (s *stubPaymentUsecase) VerifyPayment(ctx context.Context, reference string) (*dto.VerifyPaymentResponse, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) ListMyPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	return nil, nil
}

func TestHandleWebhookAcksProcessedEvents(t *testing.T) {
	stub := &stubPaymentUsecase{}
	h := NewPaymentHandler(stub, validator.NewValidator())

	body := `{"event":"charge.success","data":{"reference":"ESTATE_1_abcd1234"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook/paystack", strings.NewReader(body))
	req.Header.Set("x-paystack-signature", "some-signature")
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	assert.Equal(t, []byte(body), stub.gotBody)
	assert.Equal(t, "some-signature", stub.gotSignature)
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	stub := &stubPaymentUsecase{webhookErr: usecase.ErrInvalidSignature}
	h := NewPaymentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook/paystack", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
