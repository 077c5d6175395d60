package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/pkg/apperror"
)

type LikePostUseCase struct {
	postRepo post.Repository
}

func NewLikePostUseCase(repo post.Repository) *LikePostUseCase {
	return &LikePostUseCase{postRepo: repo}
}

// Like records the caller's like and returns the updated like list. Liking
// twice fails and leaves the list as it was.
func (uc *LikePostUseCase) Like(ctx context.Context, rawPostID string, callerID uuid.UUID) ([]post.Like, error) {
	p, err := uc.find(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	if err := p.AddLike(callerID); err != nil {
		return nil, apperror.NewAppError(apperror.ErrInvalidInput, "Post already liked", callerID.String(), err)
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like; unliking a post the caller never liked
// fails and leaves the list as it was.
func (uc *LikePostUseCase) Unlike(ctx context.Context, rawPostID string, callerID uuid.UUID) ([]post.Like, error) {
	p, err := uc.find(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveLike(callerID); err != nil {
		return nil, apperror.NewAppError(apperror.ErrInvalidInput, "Post not been liked yet", callerID.String(), err)
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

func (uc *LikePostUseCase) find(ctx context.Context, rawPostID string) (*post.Post, error) {
	postID, err := uuid.Parse(rawPostID)
	if err != nil {
		return nil, apperror.NewNotFound("Post", rawPostID)
	}
	p, err := uc.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("Post", rawPostID)
		}
		return nil, err
	}
	return p, nil
}
