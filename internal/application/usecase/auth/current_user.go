package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

// Execute resolves the caller's user record. The password hash never leaves
// the domain type's json:"-" field, so the response cannot contain it.
func (uc *CurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("User", userID.String())
		}
		return nil, err
	}
	return u, nil
}
