package post

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_AddLike_OncePerUser(t *testing.T) {
	p := &Post{Likes: []Like{}}
	userID := uuid.New()

	require.NoError(t, p.AddLike(userID))
	assert.Len(t, p.Likes, 1)

	err := p.AddLike(userID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Len(t, p.Likes, 1)
}

func TestPost_RemoveLike_NotLiked(t *testing.T) {
	p := &Post{Likes: []Like{{User: uuid.New()}}}

	err := p.RemoveLike(uuid.New())
	assert.ErrorIs(t, err, ErrNotLikedYet)
	assert.Len(t, p.Likes, 1)
}

func TestPost_AddComment_Prepends(t *testing.T) {
	p := &Post{}
	first := Comment{ID: uuid.New(), Text: "first"}
	second := Comment{ID: uuid.New(), Text: "second"}

	p.AddComment(first)
	p.AddComment(second)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "second", p.Comments[0].Text)
	assert.Equal(t, "first", p.Comments[1].Text)
}

func TestPost_RemoveComment_UnknownIDIsNoop(t *testing.T) {
	c := Comment{ID: uuid.New(), Text: "keep me"}
	p := &Post{Comments: []Comment{c}}

	p.RemoveComment(uuid.New())
	assert.Len(t, p.Comments, 1)

	p.RemoveComment(c.ID)
	assert.Empty(t, p.Comments)
}
