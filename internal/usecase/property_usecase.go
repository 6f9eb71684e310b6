package usecase

import (
	"context"
	"strings"
	"unicode"

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
	ErrPropertyTitleTaken   = apperror.Conflict("a property with this title already exists")
	ErrPropertyAccessDenied = apperror.Forbidden("property does not belong to you")
	ErrStatusNotUpdatable   = apperror.Forbidden("sold and rented statuses are set by payment reconciliation")
)

type PropertyUsecase interface {
	CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*dto.PropertyResponse, error)
	ListProperties(ctx context.Context, filter *entity.PropertyFilter) (*dto.PropertyListResponse, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

type propertyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	propertyRepo repository.PropertyRepository
	notifier     *service.Notifier
}

func NewPropertyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	propertyRepo repository.PropertyRepository,
	notifier *service.Notifier,
) PropertyUsecase {
	return &propertyUsecase{
		db:           db,
		log:          log,
		propertyRepo: propertyRepo,
		notifier:     notifier,
	}
}

func (u *propertyUsecase) CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	property := &entity.Property{
		Title:         req.Title,
		Slug:          slugify(req.Title),
		Description:   req.Description,
		Price:         req.Price,
		PriceDiscount: req.PriceDiscount,
		Status:        entity.PropertyStatusAvailable,
		PropertyType:  req.PropertyType,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Amenities:     req.Amenities,
		Images:        req.Images,
		OwnerID:       req.OwnerID,
		IsActive:      true,
	}
	if property.PropertyType == "" {
		property.PropertyType = "residential"
	}
	if property.Country == "" {
		property.Country = "Nigeria"
	}
	if role == entity.RoleAgent {
		agentID := userID
		property.AgentID = &agentID
	}

	if err := u.propertyRepo.Create(u.db.WithContext(ctx), property); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrPropertyTitleTaken
		}
		u.log.Warnf("Failed to create property: %+v", err)
		return nil, err
	}

	u.log.Infof("Property created: id=%s, title=%q", property.ID, property.Title)
	u.notifier.NotifyProperty(ctx, property, userID, service.PropertyEventNew)

	return converter.PropertyToResponse(property), nil
}

func (u *propertyUsecase) GetProperty(ctx context.Context, id uuid.UUID) (*dto.PropertyResponse, error) {
	property, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.PropertyToResponse(property), nil
}

func (u *propertyUsecase) ListProperties(ctx context.Context, filter *entity.PropertyFilter) (*dto.PropertyListResponse, error) {
	properties, total, err := u.propertyRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list properties: %+v", err)
		return nil, err
	}

	return &dto.PropertyListResponse{
		Properties: converter.PropertiesToResponses(properties),
		Total:      total,
	}, nil
}

func (u *propertyUsecase) UpdateProperty(ctx context.Context, id uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	property, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageProperty(property, userID, role) {
		return nil, ErrPropertyAccessDenied
	}

	fields := map[string]interface{}{}
	priceChanged := false
	if req.Title != "" {
		fields["title"] = req.Title
		fields["slug"] = slugify(req.Title)
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
		priceChanged = !req.Price.Equal(property.Price)
	}
	if req.PriceDiscount != nil {
		fields["price_discount"] = *req.PriceDiscount
	}
	if req.Status != "" {
		// Terminal settlement states flow only through reconciliation.
		next := entity.PropertyStatus(req.Status)
		if (next == entity.PropertyStatusSold || next == entity.PropertyStatusRented) && role != entity.RoleAdmin {
			return nil, ErrStatusNotUpdatable
		}
		fields["status"] = next
	}
	if req.PropertyType != "" {
		fields["property_type"] = req.PropertyType
	}
	if req.Bedrooms != nil {
		fields["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		fields["bathrooms"] = *req.Bathrooms
	}
	if req.Area != nil {
		fields["area"] = *req.Area
	}
	if req.Street != "" {
		fields["street"] = req.Street
	}
	if req.City != "" {
		fields["city"] = req.City
	}
	if req.State != "" {
		fields["state"] = req.State
	}
	if req.ZipCode != "" {
		fields["zip_code"] = req.ZipCode
	}
	if req.Country != "" {
		fields["country"] = req.Country
	}
	if req.Amenities != nil {
		fields["amenities"] = entity.JSON(req.Amenities)
	}
	if req.Images != nil {
		fields["images"] = entity.JSONArray(req.Images)
	}

	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := u.propertyRepo.UpdateFields(u.db.WithContext(ctx), property.ID, fields); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrPropertyTitleTaken
		}
		u.log.Warnf("Failed to update property %s: %+v", property.ID, err)
		return nil, err
	}

	updated, err := u.find(ctx, property.ID)
	if err != nil {
		return nil, err
	}

	event := service.PropertyEventUpdated
	if priceChanged {
		event = service.PropertyEventPriceChange
	}
	u.notifier.NotifyProperty(ctx, updated, userID, event)

	return converter.PropertyToResponse(updated), nil
}

func (u *propertyUsecase) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	property, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	if !canManageProperty(property, userID, role) {
		return ErrPropertyAccessDenied
	}

	if err := u.propertyRepo.SoftDelete(u.db.WithContext(ctx), property.ID); err != nil {
		u.log.Warnf("Failed to delete property %s: %+v", property.ID, err)
		return err
	}
	return nil
}

func (u *propertyUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := u.propertyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find property %s: %+v", id, err)
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// canManageProperty allows the listing agent, the owner and admins.
func canManageProperty(property *entity.Property, userID uuid.UUID, role entity.Role) bool {
	if role == entity.RoleAdmin {
		return true
	}
	if property.AgentID != nil && *property.AgentID == userID {
		return true
	}
	return property.OwnerID != nil && *property.OwnerID == userID
}

// slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
