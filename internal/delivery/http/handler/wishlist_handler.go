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

type WishlistHandler struct {
	wishlistUsecase usecase.WishlistUsecase
	validator       *validator.CustomValidator
}

func NewWishlistHandler(wishlistUsecase usecase.WishlistUsecase, validator *validator.CustomValidator) *WishlistHandler {
	return &WishlistHandler{
		wishlistUsecase: wishlistUsecase,
		validator:       validator,
	}
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddWishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.wishlistUsecase.AddItem(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Property added to wishlist", item)
}

func (h *WishlistHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	var req dto.UpdateWishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.wishlistUsecase.UpdateItem(r.Context(), propertyID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Wishlist item updated successfully", item)
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	if err := h.wishlistUsecase.RemoveItem(r.Context(), propertyID); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Property removed from wishlist", nil)
}

func (h *WishlistHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlistUsecase.ListItems(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Wishlist retrieved successfully", items)
}
