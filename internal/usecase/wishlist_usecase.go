package usecase

import (
	"context"

	"estatehub/internal/converter"
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWishlistItemNotFound = apperror.NotFound("wishlist item not found")
	ErrWishlistDuplicate    = apperror.Conflict("property is already in your wishlist")
)

type WishlistUsecase interface {
	AddItem(ctx context.Context, req *dto.AddWishlistItemRequest) (*dto.WishlistItemResponse, error)
	UpdateItem(ctx context.Context, propertyID uuid.UUID, req *dto.UpdateWishlistItemRequest) (*dto.WishlistItemResponse, error)
	RemoveItem(ctx context.Context, propertyID uuid.UUID) error
	ListItems(ctx context.Context) (*dto.WishlistResponse, error)
}

type wishlistUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	wishlistRepo repository.WishlistRepository
	propertyRepo repository.PropertyRepository
}

func NewWishlistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	wishlistRepo repository.WishlistRepository,
	propertyRepo repository.PropertyRepository,
) WishlistUsecase {
	return &wishlistUsecase{
		db:           db,
		log:          log,
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
	}
}

func (u *wishlistUsecase) AddItem(ctx context.Context, req *dto.AddWishlistItemRequest) (*dto.WishlistItemResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	property, err := u.propertyRepo.FindByID(u.db.WithContext(ctx), req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	item := &entity.WishlistItem{
		UserID:     userID,
		PropertyID: req.PropertyID,
		Notes:      req.Notes,
		Tags:       tagsToJSONArray(req.Tags),
		Priority:   req.Priority,
		CustomName: req.CustomName,
		IsActive:   true,
	}
	if item.Priority == 0 {
		item.Priority = 3
	}

	if err := u.wishlistRepo.Create(u.db.WithContext(ctx), item); err != nil {
		if isDuplicateKeyError(err, "user_property") {
			return nil, ErrWishlistDuplicate
		}
		u.log.Warnf("Failed to add wishlist item: %+v", err)
		return nil, err
	}

	item.Property = property
	return converter.WishlistItemToResponse(item), nil
}

func (u *wishlistUsecase) UpdateItem(ctx context.Context, propertyID uuid.UUID, req *dto.UpdateWishlistItemRequest) (*dto.WishlistItemResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	item, err := u.wishlistRepo.FindByUserAndProperty(u.db.WithContext(ctx), userID, propertyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrWishlistItemNotFound
	}

	fields := map[string]interface{}{}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}
	if req.Tags != nil {
		fields["tags"] = tagsToJSONArray(req.Tags)
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.CustomName != "" {
		fields["custom_name"] = req.CustomName
	}
	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	if err := u.wishlistRepo.UpdateFields(u.db.WithContext(ctx), item.ID, fields); err != nil {
		u.log.Warnf("Failed to update wishlist item %s: %+v", item.ID, err)
		return nil, err
	}

	updated, err := u.wishlistRepo.FindByUserAndProperty(u.db.WithContext(ctx), userID, propertyID)
	if err != nil || updated == nil {
		updated = item
	}
	return converter.WishlistItemToResponse(updated), nil
}

func (u *wishlistUsecase) RemoveItem(ctx context.Context, propertyID uuid.UUID) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := u.wishlistRepo.FindByUserAndProperty(u.db.WithContext(ctx), userID, propertyID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrWishlistItemNotFound
	}

	if err := u.wishlistRepo.Delete(u.db.WithContext(ctx), item.ID); err != nil {
		u.log.Warnf("Failed to remove wishlist item %s: %+v", item.ID, err)
		return err
	}
	return nil
}

func (u *wishlistUsecase) ListItems(ctx context.Context) (*dto.WishlistResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := u.wishlistRepo.ListByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list wishlist for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.WishlistResponse{
		Items: converter.WishlistItemsToResponses(items),
		Total: len(items),
	}, nil
}

func tagsToJSONArray(tags []string) entity.JSONArray {
	if tags == nil {
		return nil
	}
	arr := make(entity.JSONArray, len(tags))
	for i, tag := range tags {
		arr[i] = tag
	}
	return arr
}
