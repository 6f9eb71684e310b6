package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxWebhookBody bounds webhook payload reads.
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.InitializePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.paymentUsecase.InitializePayment(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment initialized successfully", result)
}

// HandleWebhook receives provider callbacks. The signature is checked over
// the raw body bytes; any parse or processing problem still acks with 200 so
// the provider stops retrying.
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read request body", nil)
		return
	}

	signature := r.Header.Get("x-paystack-signature")
	if err := h.paymentUsecase.HandleWebhook(r.Context(), rawBody, signature); err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.WebhookAckResponse{Received: true})
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if reference == "" {
		response.Error(w, http.StatusBadRequest, "Missing payment reference", nil)
		return
	}

	result, err := h.paymentUsecase.VerifyPayment(r.Context(), reference)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment verified successfully", result)
}

func (h *PaymentHandler) ListMyPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentUsecase.ListMyPayments(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
