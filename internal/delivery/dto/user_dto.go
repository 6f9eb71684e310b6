package dto

// Request DTOs

type UpdateMeRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone        string `json:"phone" validate:"omitempty,min=7,max=30"`
	Photo        string `json:"photo" validate:"omitempty"`
	PropertyType string `json:"property_type" validate:"omitempty,oneof=residential commercial land luxury rental"`
}

type AdminUpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=30"`
	Role     string `json:"role" validate:"omitempty,oneof=user agent admin"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type AgentApplicationRequest struct {
	Agency         string `json:"agency" validate:"required,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Bio            string `json:"bio" validate:"omitempty,max=2000"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=30"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
