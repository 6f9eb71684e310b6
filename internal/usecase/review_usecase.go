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
	ErrReviewNotFound     = apperror.NotFound("review not found")
	ErrReviewExists       = apperror.Conflict("you have already reviewed this property")
	ErrReviewAccessDenied = apperror.Forbidden("review does not belong to you")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, propertyID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, page, limit int) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateReview stores the review and recomputes the property's rating
// aggregate in the same transaction.
func (u *reviewUsecase) CreateReview(ctx context.Context, propertyID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	property, err := u.propertyRepo.FindByID(u.db.WithContext(ctx), propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	verified, err := u.bookingRepo.HasCompletedBooking(u.db.WithContext(ctx), userID, propertyID)
	if err != nil {
		u.log.Warnf("Failed to check completed bookings: %+v", err)
		return nil, err
	}

	review := &entity.Review{
		PropertyID:         propertyID,
		UserID:             userID,
		Rating:             req.Rating,
		Comment:            req.Comment,
		IsVerifiedPurchase: verified,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "property_user") {
			return nil, ErrReviewExists
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	if err := u.refreshRating(tx, propertyID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), review.ID)
	if err != nil || full == nil {
		full = review
	}
	return converter.ReviewToResponse(full), nil
}

func (u *reviewUsecase) UpdateReview(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	review, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != entity.RoleAdmin && review.UserID != userID {
		return nil, ErrReviewAccessDenied
	}

	fields := map[string]interface{}{}
	ratingChanged := false
	if req.Rating != nil {
		fields["rating"] = *req.Rating
		ratingChanged = *req.Rating != review.Rating
	}
	if req.Comment != "" {
		fields["comment"] = req.Comment
	}
	if len(fields) == 0 {
		return nil, ErrNoUpdatableFields
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reviewRepo.UpdateFields(tx, review.ID, fields); err != nil {
		u.log.Warnf("Failed to update review %s: %+v", review.ID, err)
		return nil, err
	}
	if ratingChanged {
		if err := u.refreshRating(tx, review.PropertyID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	updated, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), review.ID)
	if err != nil || updated == nil {
		updated = review
	}
	return converter.ReviewToResponse(updated), nil
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, id uuid.UUID) error {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	review, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin && review.UserID != userID {
		return ErrReviewAccessDenied
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reviewRepo.Delete(tx, review.ID); err != nil {
		u.log.Warnf("Failed to delete review %s: %+v", review.ID, err)
		return err
	}
	if err := u.refreshRating(tx, review.PropertyID); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *reviewUsecase) ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, page, limit int) (*dto.ReviewListResponse, error) {
	reviews, total, err := u.reviewRepo.ListByProperty(u.db.WithContext(ctx), propertyID, page, limit)
	if err != nil {
		u.log.Warnf("Failed to list reviews for property %s: %+v", propertyID, err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   total,
	}, nil
}

func (u *reviewUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find review %s: %+v", id, err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

func (u *reviewUsecase) refreshRating(tx *gorm.DB, propertyID uuid.UUID) error {
	avg, count, err := u.reviewRepo.RatingAggregate(tx, propertyID)
	if err != nil {
		u.log.Warnf("Failed to aggregate ratings for property %s: %+v", propertyID, err)
		return err
	}
	return u.propertyRepo.UpdateFields(tx, propertyID, map[string]interface{}{
		"rating_average": avg,
		"rating_count":   count,
	})
}
