package handler

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), propertyID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid review ID", nil)
		return
	}

	var req dto.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.UpdateReview(r.Context(), id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Review updated successfully", review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid review ID", nil)
		return
	}

	if err := h.reviewUsecase.DeleteReview(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Review deleted successfully", nil)
}

func (h *ReviewHandler) ListPropertyReviews(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	page, limit := parsePagination(r)
	reviews, err := h.reviewUsecase.ListPropertyReviews(r.Context(), propertyID, page, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Reviews retrieved successfully", reviews,
		paginationMeta(page, limit, reviews.Total))
}
