package handler

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := &entity.UserFilter{}
	filter.Page, filter.Limit = parsePagination(r)

	query := r.URL.Query()
	if raw := query.Get("role"); raw != "" {
		role := entity.Role(raw)
		filter.Role = &role
	}
	if raw := query.Get("agent_status"); raw != "" {
		status := entity.AgentStatus(raw)
		filter.AgentStatus = &status
	}

	users, err := h.userUsecase.ListUsers(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users,
		paginationMeta(filter.Page, filter.Limit, users.Total))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateMe(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.AdminUpdateUser(r.Context(), id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userUsecase.DeactivateUser(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User deactivated successfully", nil)
}

func (h *UserHandler) ApplyAsAgent(w http.ResponseWriter, r *http.Request) {
	var req dto.AgentApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.ApplyAsAgent(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Agent application submitted successfully", user)
}

func (h *UserHandler) ApproveAgentApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.ApproveAgentApplication(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Agent application approved", user)
}

func (h *UserHandler) RejectAgentApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.RejectAgentApplication(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Agent application rejected", user)
}
