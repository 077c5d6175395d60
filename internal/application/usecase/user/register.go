package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnect/api/adapters/event"
	userDomain "github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/auth"
	"github.com/devconnect/api/pkg/gravatar"
	"github.com/devconnect/api/pkg/logger"
)

type EventPublisher interface {
	PublishUserEvent(ctx context.Context, payload event.UserEventPayload) error
}

type RegisterUseCase struct {
	userRepo  userDomain.Repository
	jwtSvc    *auth.JWTService
	publisher EventPublisher
	logger    logger.Logger
}

func NewRegisterUseCase(repo userDomain.Repository, jwtSvc *auth.JWTService, publisher EventPublisher, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:  repo,
		jwtSvc:    jwtSvc,
		publisher: publisher,
		logger:    log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	Token string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if _, err := uc.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperror.NewConflict("User", "email", email)
	} else if !errors.Is(err, userDomain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &userDomain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Avatar:       gravatar.URL(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", newUser.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.PublishUserEvent(context.Background(), event.UserEventPayload{
				EventType: event.UserEventTypeRegistered,
				UserID:    newUser.ID,
				Email:     newUser.Email,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'user.registered' event", err, zap.String("user_id", newUser.ID.String()))
			}
		}()
	}

	return &RegisterOutput{Token: token}, nil
}
