package usecase

import (
	"context"

	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/domain/entity"
	"estatehub/pkg/apperror"

	"github.com/google/uuid"
)

var ErrNoActor = apperror.Unauthorized("user not found in context")

// actorFromContext pulls the authenticated identity stored by the auth
// middleware.
func actorFromContext(ctx context.Context) (uuid.UUID, entity.Role, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", ErrNoActor
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return uuid.Nil, "", ErrNoActor
	}
	return userID, entity.Role(role), nil
}

func emailFromContext(ctx context.Context) (string, bool) {
	return middleware.GetUserEmailFromContext(ctx)
}
