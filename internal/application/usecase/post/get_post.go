package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/pkg/apperror"
)

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(repo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: repo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, rawPostID string) (*post.Post, error) {
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
