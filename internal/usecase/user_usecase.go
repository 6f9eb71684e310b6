package usecase

import (
	"context"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/service"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlreadyAgent       = apperror.InvalidState("you are already an agent")
	ErrApplicationPending = apperror.Conflict("an agent application is already pending")
	ErrNoApplication      = apperror.InvalidState("user has no pending agent application")
)

type UserUsecase interface {
	ListUsers(ctx context.Context, filter *entity.UserFilter) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, req *dto.UpdateMeRequest) (*dto.UserResponse, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	ApplyAsAgent(ctx context.Context, req *dto.AgentApplicationRequest) (*dto.UserResponse, error)
	ApproveAgentApplication(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	RejectAgentApplication(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	notifier *service.Notifier
	mailer   *service.Mailer
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	notifier *service.Notifier,
	mailer *service.Mailer,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		notifier: notifier,
		mailer:   mailer,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context, filter *entity.UserFilter) (*dto.UserListResponse, error) {
	users, total, err := u.userRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: total,
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

// UpdateMe applies the self-service allowlist: identity fields only, never
// role or agent status.
func (u *userUsecase) UpdateMe(ctx context.Context, req *dto.UpdateMeRequest) (*dto.UserResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Photo != "" {
		fields["photo"] = req.Photo
	}
	if req.PropertyType != "" {
		fields["property_type"] = req.PropertyType
	}
	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), userID, fields); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}
	return u.GetUser(ctx, userID)
}

func (u *userUsecase) AdminUpdateUser(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := u.find(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), id, fields); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}
	return u.GetUser(ctx, id)
}

func (u *userUsecase) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if _, err := u.find(ctx, id); err != nil {
		return err
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), id, map[string]interface{}{
		"is_active": false,
	}); err != nil {
		u.log.Warnf("Failed to deactivate user %s: %+v", id, err)
		return err
	}
	return nil
}

// ApplyAsAgent files an agent application on the caller's own account.
func (u *userUsecase) ApplyAsAgent(ctx context.Context, req *dto.AgentApplicationRequest) (*dto.UserResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if role == entity.RoleAgent || role == entity.RoleAdmin {
		return nil, ErrAlreadyAgent
	}

	user, err := u.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AgentStatus == entity.AgentStatusPending {
		return nil, ErrApplicationPending
	}

	fields := map[string]interface{}{
		"agency":         req.Agency,
		"specialization": req.Specialization,
		"bio":            req.Bio,
		"agent_status":   entity.AgentStatusPending,
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), userID, fields); err != nil {
		u.log.Warnf("Failed to file agent application for %s: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Agent application filed: user=%s, agency=%q", userID, req.Agency)
	return u.GetUser(ctx, userID)
}

func (u *userUsecase) ApproveAgentApplication(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.AgentStatus != entity.AgentStatusPending {
		return nil, ErrNoApplication
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), id, map[string]interface{}{
		"role":         entity.RoleAgent,
		"agent_status": entity.AgentStatusApproved,
	}); err != nil {
		u.log.Warnf("Failed to approve agent application for %s: %+v", id, err)
		return nil, err
	}

	u.notifier.NotifyUser(ctx, id, entity.NotificationTypeSystem,
		"Agent application approved", "Congratulations! Your agent application has been approved.")
	u.mailer.SendAsync(user.Email, "Agent application approved",
		"<p>Congratulations! Your agent application has been approved.</p>")

	return u.GetUser(ctx, id)
}

func (u *userUsecase) RejectAgentApplication(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.AgentStatus != entity.AgentStatusPending {
		return nil, ErrNoApplication
	}

	if err := u.userRepo.UpdateFields(u.db.WithContext(ctx), id, map[string]interface{}{
		"agent_status": entity.AgentStatusRejected,
	}); err != nil {
		u.log.Warnf("Failed to reject agent application for %s: %+v", id, err)
		return nil, err
	}

	u.notifier.NotifyUser(ctx, id, entity.NotificationTypeSystem,
		"Agent application rejected", "Unfortunately your agent application has been rejected.")

	return u.GetUser(ctx, id)
}

func (u *userUsecase) find(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
