package post

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postDomain "github.com/devconnect/api/internal/domain/post"
	userDomain "github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

type fakePostRepo struct {
	posts map[uuid.UUID]*postDomain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*postDomain.Post)}
}

func (r *fakePostRepo) Save(_ context.Context, p *postDomain.Post) error {
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, p *postDomain.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return postDomain.ErrPostNotFound
	}
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return postDomain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*postDomain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, postDomain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]*postDomain.Post, error) {
	out := make([]*postDomain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*userDomain.User
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userDomain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func seededAuthor(t *testing.T) (*fakeUserRepo, *userDomain.User) {
	t.Helper()
	author := &userDomain.User{
		ID:     uuid.New(),
		Name:   "Jane Dev",
		Email:  "jane@example.com",
		Avatar: "https://gravatar.com/avatar/abc",
	}
	return &fakeUserRepo{users: map[uuid.UUID]*userDomain.User{author.ID: author}}, author
}

func TestCreatePost_DenormalizesAuthor(t *testing.T) {
	pRepo := newFakePostRepo()
	uRepo, author := seededAuthor(t)
	uc := NewCreatePostUseCase(pRepo, uRepo, nil, logger.NewZapLogger("development"))

	created, err := uc.Execute(context.Background(), CreatePostInput{UserID: author.ID, Text: "hello world"})
	require.NoError(t, err)

	assert.Equal(t, author.ID, created.UserID)
	assert.Equal(t, "Jane Dev", created.Name)
	assert.Equal(t, author.Avatar, created.Avatar)
	assert.NotNil(t, created.Likes)
	assert.NotNil(t, created.Comments)

	stored, err := pRepo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", stored.Text)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	uc := NewCreatePostUseCase(newFakePostRepo(), &fakeUserRepo{users: map[uuid.UUID]*userDomain.User{}}, nil, logger.NewZapLogger("development"))

	_, err := uc.Execute(context.Background(), CreatePostInput{UserID: uuid.New(), Text: "hi"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPost_MalformedID(t *testing.T) {
	uc := NewGetPostUseCase(newFakePostRepo())

	_, err := uc.Execute(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeletePost_OnlyOwner(t *testing.T) {
	pRepo := newFakePostRepo()
	uRepo, author := seededAuthor(t)
	createUC := NewCreatePostUseCase(pRepo, uRepo, nil, logger.NewZapLogger("development"))
	deleteUC := NewDeletePostUseCase(pRepo, nil, logger.NewZapLogger("development"))

	created, err := createUC.Execute(context.Background(), CreatePostInput{UserID: author.ID, Text: "mine"})
	require.NoError(t, err)

	err = deleteUC.Execute(context.Background(), created.ID.String(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrPermission)

	// the post is still there for its owner
	require.NoError(t, deleteUC.Execute(context.Background(), created.ID.String(), author.ID))
	_, err = pRepo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
}

func TestLikePost_StateMachine(t *testing.T) {
	pRepo := newFakePostRepo()
	uRepo, author := seededAuthor(t)
	createUC := NewCreatePostUseCase(pRepo, uRepo, nil, logger.NewZapLogger("development"))
	likeUC := NewLikePostUseCase(pRepo)

	created, err := createUC.Execute(context.Background(), CreatePostInput{UserID: author.ID, Text: "like me"})
	require.NoError(t, err)
	liker := uuid.New()

	likes, err := likeUC.Like(context.Background(), created.ID.String(), liker)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, liker, likes[0].User)

	// second like fails and the stored list stays at one
	_, err = likeUC.Like(context.Background(), created.ID.String(), liker)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	stored, err := pRepo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Likes, 1)

	likes, err = likeUC.Unlike(context.Background(), created.ID.String(), liker)
	require.NoError(t, err)
	assert.Empty(t, likes)

	_, err = likeUC.Unlike(context.Background(), created.ID.String(), liker)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestComments_PrependAndOwnership(t *testing.T) {
	pRepo := newFakePostRepo()
	uRepo, author := seededAuthor(t)
	commenter := &userDomain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Avatar: "https://gravatar.com/avatar/bob"}
	uRepo.users[commenter.ID] = commenter

	createUC := NewCreatePostUseCase(pRepo, uRepo, nil, logger.NewZapLogger("development"))
	commentUC := NewCommentPostUseCase(pRepo, uRepo)

	created, err := createUC.Execute(context.Background(), CreatePostInput{UserID: author.ID, Text: "discuss"})
	require.NoError(t, err)

	_, err = commentUC.Add(context.Background(), AddCommentInput{PostID: created.ID.String(), CallerID: author.ID, Text: "first"})
	require.NoError(t, err)
	comments, err := commentUC.Add(context.Background(), AddCommentInput{PostID: created.ID.String(), CallerID: commenter.ID, Text: "second"})
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "Bob", comments[0].Name)
	assert.WithinDuration(t, time.Now().UTC(), comments[0].CreatedAt, time.Minute)

	// only the comment's author may remove it
	_, err = commentUC.Remove(context.Background(), created.ID.String(), comments[0].ID.String(), author.ID)
	assert.ErrorIs(t, err, apperror.ErrPermission)

	comments, err = commentUC.Remove(context.Background(), created.ID.String(), comments[0].ID.String(), commenter.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Text)
}

func TestRemoveComment_Unknown(t *testing.T) {
	pRepo := newFakePostRepo()
	uRepo, author := seededAuthor(t)
	createUC := NewCreatePostUseCase(pRepo, uRepo, nil, logger.NewZapLogger("development"))
	commentUC := NewCommentPostUseCase(pRepo, uRepo)

	created, err := createUC.Execute(context.Background(), CreatePostInput{UserID: author.ID, Text: "quiet"})
	require.NoError(t, err)

	_, err = commentUC.Remove(context.Background(), created.ID.String(), uuid.New().String(), author.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
