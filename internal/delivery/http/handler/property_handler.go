package handler

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"

	"github.com/shopspring/decimal"
)

type PropertyHandler struct {
	propertyUsecase usecase.PropertyUsecase
	validator       *validator.CustomValidator
}

func NewPropertyHandler(propertyUsecase usecase.PropertyUsecase, validator *validator.CustomValidator) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
		validator:       validator,
	}
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	property, err := h.propertyUsecase.CreateProperty(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Property created successfully", property)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	property, err := h.propertyUsecase.GetProperty(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Property retrieved successfully", property)
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter := &entity.PropertyFilter{}
	filter.Page, filter.Limit = parsePagination(r)

	query := r.URL.Query()
	filter.City = query.Get("city")
	filter.PropertyType = query.Get("property_type")
	filter.Search = query.Get("search")
	if raw := query.Get("status"); raw != "" {
		status := entity.PropertyStatus(raw)
		filter.Status = &status
	}
	if raw := query.Get("min_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := query.Get("max_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &price
		}
	}

	properties, err := h.propertyUsecase.ListProperties(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Properties retrieved successfully", properties,
		paginationMeta(filter.Page, filter.Limit, properties.Total))
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	var req dto.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	property, err := h.propertyUsecase.UpdateProperty(r.Context(), id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Property updated successfully", property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	if err := h.propertyUsecase.DeleteProperty(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Property deleted successfully", nil)
}
