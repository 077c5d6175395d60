package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnect/api/adapters/event"
	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo  post.Repository
	publisher EventPublisher
	logger    logger.Logger
}

func NewDeletePostUseCase(repo post.Repository, publisher EventPublisher, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:  repo,
		publisher: publisher,
		logger:    log,
	}
}

// Execute deletes a post after checking the caller authored it.
func (uc *DeletePostUseCase) Execute(ctx context.Context, rawPostID string, callerID uuid.UUID) error {
	postID, err := uuid.Parse(rawPostID)
	if err != nil {
		return apperror.NewNotFound("Post", rawPostID)
	}

	p, err := uc.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("Post", rawPostID)
		}
		return err
	}

	if p.UserID != callerID {
		return apperror.NewPermissionDenied("only the author can delete a post")
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
				EventType: event.PostEventTypeDeleted,
				PostID:    postID,
				UserID:    callerID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'post.deleted' event", err, zap.String("post_id", postID.String()))
			}
		}()
	}
	return nil
}
