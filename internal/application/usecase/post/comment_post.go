package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
)

type CommentPostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewCommentPostUseCase(pRepo post.Repository, uRepo user.Repository) *CommentPostUseCase {
	return &CommentPostUseCase{postRepo: pRepo, userRepo: uRepo}
}

type AddCommentInput struct {
	PostID   string
	CallerID uuid.UUID
	Text     string
}

// Add prepends a comment carrying a snapshot of the commenter's name and
// avatar, and returns the updated comment list.
func (uc *CommentPostUseCase) Add(ctx context.Context, input AddCommentInput) ([]post.Comment, error) {
	p, err := uc.find(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	author, err := uc.userRepo.FindByID(ctx, input.CallerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("User", input.CallerID.String())
		}
		return nil, err
	}

	p.AddComment(post.Comment{
		ID:        uuid.New(),
		User:      author.ID,
		Text:      input.Text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now().UTC(),
	})

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// Remove deletes a comment after checking the caller wrote it, and returns
// the updated comment list.
func (uc *CommentPostUseCase) Remove(ctx context.Context, rawPostID, rawCommentID string, callerID uuid.UUID) ([]post.Comment, error) {
	p, err := uc.find(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	commentID, err := uuid.Parse(rawCommentID)
	if err != nil {
		return nil, apperror.NewNotFound("Comment", rawCommentID)
	}

	comment, ok := p.FindComment(commentID)
	if !ok {
		return nil, apperror.NewNotFound("Comment", rawCommentID)
	}
	if comment.User != callerID {
		return nil, apperror.NewPermissionDenied("only the author can delete a comment")
	}

	p.RemoveComment(commentID)

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (uc *CommentPostUseCase) find(ctx context.Context, rawPostID string) (*post.Post, error) {
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
