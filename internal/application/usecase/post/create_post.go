package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnect/api/adapters/event"
	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

type EventPublisher interface {
	PublishPostEvent(ctx context.Context, payload event.PostEventPayload) error
}

type CreatePostUseCase struct {
	postRepo  post.Repository
	userRepo  user.Repository
	publisher EventPublisher
	logger    logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, publisher EventPublisher, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  pRepo,
		userRepo:  uRepo,
		publisher: publisher,
		logger:    log,
	}
}

type CreatePostInput struct {
	UserID uuid.UUID
	Text   string
}

// Execute copies the author's name and avatar onto the post at creation
// time; later changes to the user do not propagate back.
func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*post.Post, error) {
	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("User", input.UserID.String())
		}
		return nil, err
	}

	newPost := &post.Post{
		ID:        uuid.New(),
		UserID:    author.ID,
		Text:      input.Text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []post.Like{},
		Comments:  []post.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
				EventType: event.PostEventTypeCreated,
				PostID:    newPost.ID,
				UserID:    newPost.UserID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'post.created' event", err, zap.String("post_id", newPost.ID.String()))
			}
		}()
	}

	return newPost, nil
}
