package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter := &entity.BookingFilter{}
	filter.Page, filter.Limit = parsePagination(r)

	query := r.URL.Query()
	if raw := query.Get("property"); raw != "" {
		if propertyID, err := uuid.Parse(raw); err == nil {
			filter.PropertyID = &propertyID
		}
	}
	if raw := query.Get("status"); raw != "" {
		status := entity.BookingStatus(raw)
		filter.Status = &status
	}
	if raw := query.Get("booking_type"); raw != "" {
		bookingType := entity.BookingType(raw)
		filter.BookingType = &bookingType
	}

	bookings, err := h.bookingUsecase.ListBookings(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings,
		paginationMeta(filter.Page, filter.Limit, bookings.Total))
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.ConfirmBooking(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	// Body is optional; an empty cancel is a cancel without a reason.
	var req dto.CancelBookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.bookingUsecase.CancelBooking(r.Context(), id, &req); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RejectBookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.bookingUsecase.RejectBooking(r.Context(), id, &req); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking rejected successfully", nil)
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.CompleteBooking(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking completed successfully", nil)
}

func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.ConfirmPayment(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment confirmed successfully", nil)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.DeleteBooking(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.bookingUsecase.CheckAvailability(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability checked successfully", availability)
}

func (h *BookingHandler) GetAgentSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.bookingUsecase.GetAgentSchedule(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *BookingHandler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookingUsecase.GetBookingStats(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *BookingHandler) GetMonthlyBookings(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year < 2000 || year > 2100 {
		response.Error(w, http.StatusBadRequest, "Invalid year", nil)
		return
	}

	stats, err := h.bookingUsecase.GetMonthlyBookings(r.Context(), year)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Monthly stats retrieved successfully", stats)
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
