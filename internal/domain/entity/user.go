package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// AgentStatus tracks a user's application to become an agent
type AgentStatus string

const (
	AgentStatusNone     AgentStatus = "none"
	AgentStatusPending  AgentStatus = "pending"
	AgentStatusApproved AgentStatus = "approved"
	AgentStatusRejected AgentStatus = "rejected"
)

// User represents an account: regular users, agents and admins share the table
type User struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string      `gorm:"type:varchar(100);not null" json:"name"`
	Email          string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string      `gorm:"type:varchar(255);not null" json:"-"`
	Role           Role        `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	Phone          string      `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Photo          string      `gorm:"type:varchar(255);default:'default.jpg'" json:"photo,omitempty"`
	PropertyType   string      `gorm:"type:varchar(30);default:'residential'" json:"property_type,omitempty"`
	Agency         string      `gorm:"type:varchar(100)" json:"agency,omitempty"`
	Specialization string      `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	Bio            string      `gorm:"type:text" json:"bio,omitempty"`
	AgentStatus    AgentStatus `gorm:"type:varchar(20);not null;default:'none'" json:"agent_status"`
	IsActive       bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
