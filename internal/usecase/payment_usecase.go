package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"estatehub/config"
	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/payment"
	"estatehub/internal/metrics"
	"estatehub/internal/service"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound     = apperror.NotFound("payment not found")
	ErrPaymentAccessDenied = apperror.Forbidden("payment does not belong to you")
	ErrPaymentTypeMismatch = apperror.InvalidState("payment type does not match the booking type")
	ErrBookingNotPayable   = apperror.InvalidState("booking must be agent-confirmed before payment")
	ErrBookingAlreadyPaid  = apperror.InvalidState("booking has already been paid")
	ErrMissingPrice        = apperror.InvalidState("booking has no price to charge")
	ErrProviderFailure     = apperror.External("payment provider request failed")
	ErrInvalidSignature    = apperror.Unauthorized("invalid webhook signature")
)

// rentalFixedFee is the flat service charge added on top of the security
// deposit heuristic for rental payments.
var rentalFixedFee = decimal.NewFromInt(10000)

type PaymentUsecase interface {
	InitializePayment(ctx context.Context, bookingID uuid.UUID, req *dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	VerifyPayment(ctx context.Context, reference string) (*dto.VerifyPaymentResponse, error)
	ListMyPayments(ctx context.Context) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          *config.Config
	paymentRepo  repository.PaymentRepository
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	paystack     *payment.PaystackClient
	notifier     *service.Notifier
	mailer       *service.Mailer
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg *config.Config,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	paystack *payment.PaystackClient,
	notifier *service.Notifier,
	mailer *service.Mailer,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		paystack:     paystack,
		notifier:     notifier,
		mailer:       mailer,
	}
}

// InitializePayment creates a pending Payment with a fresh reference and
// asks the provider for a checkout URL. The Payment row exists before the
// provider is contacted so a webhook can never arrive for an unknown
// reference.
func (u *paymentUsecase) InitializePayment(ctx context.Context, bookingID uuid.UUID, req *dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	email, _ := emailFromContext(ctx)

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsOwnedBy(userID) {
		return nil, ErrBookingAccessDenied
	}
	if string(booking.BookingType) != req.Type {
		return nil, ErrPaymentTypeMismatch
	}
	if booking.Status != entity.BookingStatusAgentConfirmed {
		return nil, ErrBookingNotPayable
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return nil, ErrBookingAlreadyPaid
	}

	amount, err := u.chargeAmount(booking, entity.PaymentType(req.Type))
	if err != nil {
		return nil, err
	}
	amount = u.applyTestCap(amount)

	paymentRecord := &entity.Payment{
		BookingID:   booking.ID,
		UserID:      userID,
		Amount:      amount,
		Currency:    "NGN",
		Provider:    "paystack",
		PaymentType: entity.PaymentType(req.Type),
		Reference:   generateReference(),
		Status:      entity.ProviderStatusPending,
	}

	if err := u.paymentRepo.Create(u.db.WithContext(ctx), paymentRecord); err != nil {
		u.log.Warnf("Failed to create payment record: %+v", err)
		return nil, err
	}

	initResp, err := u.paystack.InitializeTransaction(ctx, &payment.InitializeRequest{
		Email:       email,
		Amount:      amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Reference:   paymentRecord.Reference,
		CallbackURL: u.cfg.App.FrontendURL + "/payments/callback",
		Metadata: map[string]string{
			"payment_id":  paymentRecord.ID.String(),
			"booking_id":  booking.ID.String(),
			"property_id": booking.PropertyID.String(),
			"user_id":     userID.String(),
			"type":        req.Type,
		},
	})
	if err != nil {
		// The payment stays pending; the client may retry initialization.
		u.log.Warnf("Paystack initialization failed for %s: %+v", paymentRecord.Reference, err)
		return nil, ErrProviderFailure
	}

	if err := u.paymentRepo.UpdateFields(u.db.WithContext(ctx), paymentRecord.ID, map[string]interface{}{
		"authorization_url": initResp.Data.AuthorizationURL,
	}); err != nil {
		u.log.Warnf("Failed to persist authorization URL for %s: %+v", paymentRecord.Reference, err)
	}

	u.log.Infof("Payment initialized: reference=%s, booking=%s, amount=%s", paymentRecord.Reference, booking.ID, amount)

	return &dto.InitializePaymentResponse{
		AuthorizationURL: initResp.Data.AuthorizationURL,
		Reference:        paymentRecord.Reference,
		Amount:           amount,
		Type:             req.Type,
		Currency:         paymentRecord.Currency,
	}, nil
}

// webhookEvent is the subset of the Paystack event payload we act on.
type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string                 `json:"reference"`
		Status    string                 `json:"status"`
		PaidAt    string                 `json:"paid_at"`
		Metadata  map[string]interface{} `json:"metadata"`
	} `json:"data"`
}

// webhookAction is what the reconciler does with a verified event.
type webhookAction int

const (
	webhookIgnore webhookAction = iota
	webhookMarkFailed
	webhookSettle
)

// decideWebhookAction maps a parsed event and the current payment state to
// the reconciliation action. A settled payment absorbs replays of any event
// without mutation.
func decideWebhookAction(event *webhookEvent, paymentRecord *entity.Payment) webhookAction {
	if paymentRecord == nil || paymentRecord.IsSettled() {
		return webhookIgnore
	}
	switch event.Event {
	case "charge.failed":
		return webhookMarkFailed
	case "charge.success":
		return webhookSettle
	default:
		return webhookIgnore
	}
}

// HandleWebhook reconciles a provider callback. Only a bad signature is an
// error; every other outcome acks with 200 so the provider stops retrying,
// and the outcome is counted instead.
func (u *paymentUsecase) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !u.paystack.VerifySignature(rawBody, signature) {
		metrics.IncWebhookEvent("invalid_signature")
		return ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		u.log.Warnf("Failed to parse webhook payload: %+v", err)
		metrics.IncWebhookEvent("ignored")
		return nil
	}

	var rawResponse entity.JSON
	if err := json.Unmarshal(rawBody, &rawResponse); err != nil {
		rawResponse = nil
	}

	paymentRecord := u.resolvePayment(ctx, &event)
	if paymentRecord == nil {
		u.log.Warnf("Webhook for unknown payment: event=%s, reference=%s", event.Event, event.Data.Reference)
		metrics.IncWebhookEvent("ignored")
		return nil
	}

	switch decideWebhookAction(&event, paymentRecord) {
	case webhookMarkFailed:
		if err := u.paymentRepo.UpdateFields(u.db.WithContext(ctx), paymentRecord.ID, map[string]interface{}{
			"status":       entity.ProviderStatusFailed,
			"raw_response": rawResponse,
		}); err != nil {
			u.log.Errorf("Failed to mark payment %s failed: %+v", paymentRecord.Reference, err)
			metrics.IncWebhookEvent("failed")
			return nil
		}
		metrics.IncWebhookEvent("charge_failed")
		return nil

	case webhookSettle:
		if err := u.settle(ctx, paymentRecord, &event, rawResponse); err != nil {
			u.log.Errorf("Failed to settle payment %s: %+v", paymentRecord.Reference, err)
			metrics.IncWebhookEvent("failed")
			return nil
		}
		metrics.IncWebhookEvent("success")
		return nil

	default:
		metrics.IncWebhookEvent("ignored")
		return nil
	}
}

// settle applies the terminal success in one transaction: payment, booking
// and property move together or not at all.
func (u *paymentUsecase) settle(ctx context.Context, paymentRecord *entity.Payment, event *webhookEvent, rawResponse entity.JSON) error {
	paidAt := time.Now().UTC()
	if event.Data.PaidAt != "" {
		if parsed, err := time.Parse(time.RFC3339, event.Data.PaidAt); err == nil {
			paidAt = parsed
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.paymentRepo.UpdateFields(tx, paymentRecord.ID, map[string]interface{}{
		"status":       entity.ProviderStatusSuccess,
		"paid_at":      paidAt,
		"raw_response": rawResponse,
	}); err != nil {
		return err
	}

	booking, err := u.bookingRepo.FindByID(tx, paymentRecord.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %s missing for payment %s", paymentRecord.BookingID, paymentRecord.Reference)
	}

	if err := u.bookingRepo.UpdateFields(tx, booking.ID, map[string]interface{}{
		"status":         entity.BookingStatusCompleted,
		"payment_status": entity.PaymentStatusPaid,
	}); err != nil {
		return err
	}

	propertyStatus := entity.PropertyStatusSold
	if paymentRecord.PaymentType == entity.PaymentTypeRental {
		propertyStatus = entity.PropertyStatusRented
	}
	if err := u.propertyRepo.UpdateFields(tx, booking.PropertyID, map[string]interface{}{
		"status": propertyStatus,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.log.Infof("Payment settled: reference=%s, booking=%s, property=%s -> %s",
		paymentRecord.Reference, booking.ID, booking.PropertyID, propertyStatus)

	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		full = booking
	}
	u.notifier.NotifyBooking(ctx, full, service.BookingEventPaid)
	if full.User != nil {
		u.mailer.SendAsync(full.User.Email, "Payment received",
			fmt.Sprintf("<p>Your payment of %s %s has been received.</p>", paymentRecord.Currency, paymentRecord.Amount))
	}
	return nil
}

// resolvePayment finds the payment a webhook refers to, preferring the
// payment_id carried in metadata and falling back to the reference.
func (u *paymentUsecase) resolvePayment(ctx context.Context, event *webhookEvent) *entity.Payment {
	if raw, ok := event.Data.Metadata["payment_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			paymentRecord, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
			if err == nil && paymentRecord != nil {
				return paymentRecord
			}
		}
	}
	if event.Data.Reference == "" {
		return nil
	}
	paymentRecord, err := u.paymentRepo.FindByReference(u.db.WithContext(ctx), event.Data.Reference)
	if err != nil {
		u.log.Warnf("Failed to find payment by reference %s: %+v", event.Data.Reference, err)
		return nil
	}
	return paymentRecord
}

func (u *paymentUsecase) VerifyPayment(ctx context.Context, reference string) (*dto.VerifyPaymentResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	paymentRecord, err := u.paymentRepo.FindByReference(u.db.WithContext(ctx), reference)
	if err != nil {
		u.log.Warnf("Failed to find payment by reference %s: %+v", reference, err)
		return nil, err
	}
	if paymentRecord == nil {
		return nil, ErrPaymentNotFound
	}
	if role != entity.RoleAdmin && paymentRecord.UserID != userID {
		return nil, ErrPaymentAccessDenied
	}

	resp := &dto.VerifyPaymentResponse{
		PaymentStatus: string(paymentRecord.Status),
		PaymentType:   string(paymentRecord.PaymentType),
		Amount:        paymentRecord.Amount,
		PaidAt:        paymentRecord.PaidAt,
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), paymentRecord.BookingID)
	if err == nil && booking != nil {
		resp.BookingStatus = string(booking.Status)
	}
	return resp, nil
}

func (u *paymentUsecase) ListMyPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := u.paymentRepo.ListByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list payments for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// chargeAmount computes what the user owes. Purchases charge the booking
// price; rentals charge a 1.5-month security deposit plus one month of rent
// plus the fixed service fee, rounded to whole currency units.
func (u *paymentUsecase) chargeAmount(booking *entity.Booking, paymentType entity.PaymentType) (decimal.Decimal, error) {
	var base decimal.Decimal
	switch {
	case booking.Price != nil:
		base = *booking.Price
	case booking.Property != nil:
		base = booking.Property.Price
	default:
		return decimal.Zero, ErrMissingPrice
	}

	if paymentType == entity.PaymentTypeRental {
		return rentalAmount(base), nil
	}
	return base.Round(2), nil
}

// rentalAmount = round(1.5 x rent + rent + fixed fee).
func rentalAmount(monthlyRent decimal.Decimal) decimal.Decimal {
	return monthlyRent.Mul(decimal.NewFromFloat(2.5)).Add(rentalFixedFee).Round(0)
}

// applyTestCap clamps the charge in development so sandbox accounts never
// see realistic property prices. Disabled outside development or when the
// cap is zero.
func (u *paymentUsecase) applyTestCap(amount decimal.Decimal) decimal.Decimal {
	if !u.cfg.App.IsDevelopment() || u.cfg.Paystack.TestAmountCap <= 0 {
		return amount
	}
	ceiling := decimal.NewFromInt(u.cfg.Paystack.TestAmountCap)
	if amount.GreaterThan(ceiling) {
		return ceiling
	}
	return amount
}

// generateReference builds a unique provider correlation id:
// ESTATE_<unix-millis>_<8 hex chars>.
func generateReference() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to time-only uniqueness; the unique index still guards.
		return fmt.Sprintf("ESTATE_%d_%08x", time.Now().UnixMilli(), time.Now().UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("ESTATE_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
