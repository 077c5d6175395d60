package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/devconnect/api/internal/domain/post"
	"github.com/devconnect/api/internal/domain/user"
)

type PostRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	postRepo    post.Repository
	userRepo    user.Repository
	author      *user.User
}

func (s *PostRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.postRepo = NewPostgresPostRepo(s.dbPool)
	s.userRepo = NewPostgresUserRepo(s.dbPool)

	s.author = &user.User{
		ID:           uuid.New(),
		Name:         "Test Author",
		Email:        "author@example.com",
		Avatar:       "https://gravatar.com/avatar/test",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, s.author); err != nil {
		s.T().Fatalf("Failed to seed author: %s", err)
	}
}

func (s *PostRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPostRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PostRepoIntegrationTestSuite))
}

func (s *PostRepoIntegrationTestSuite) newPost(text string) *post.Post {
	return &post.Post{
		ID:        uuid.New(),
		UserID:    s.author.ID,
		Text:      text,
		Name:      s.author.Name,
		Avatar:    s.author.Avatar,
		Likes:     []post.Like{},
		Comments:  []post.Comment{},
		CreatedAt: time.Now().UTC(),
	}
}

func (s *PostRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	saved := s.newPost("integration hello")
	s.Require().NoError(s.postRepo.Save(ctx, saved))

	found, err := s.postRepo.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved.Text, found.Text)
	s.Equal(s.author.ID, found.UserID)
	s.Equal(s.author.Name, found.Name)
	s.Empty(found.Likes)
	s.Empty(found.Comments)
}

func (s *PostRepoIntegrationTestSuite) Test_FindByID_NotFound() {
	_, err := s.postRepo.FindByID(context.Background(), uuid.New())
	s.ErrorIs(err, post.ErrPostNotFound)
}

func (s *PostRepoIntegrationTestSuite) Test_Update_LikesAndComments() {
	ctx := context.Background()

	saved := s.newPost("likes and comments")
	s.Require().NoError(s.postRepo.Save(ctx, saved))

	s.Require().NoError(saved.AddLike(s.author.ID))
	saved.AddComment(post.Comment{
		ID:        uuid.New(),
		User:      s.author.ID,
		Text:      "a comment",
		Name:      s.author.Name,
		Avatar:    s.author.Avatar,
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(s.postRepo.Update(ctx, saved))

	found, err := s.postRepo.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Likes, 1)
	s.Equal(s.author.ID, found.Likes[0].User)
	s.Require().Len(found.Comments, 1)
	s.Equal("a comment", found.Comments[0].Text)
	s.Equal(s.author.Name, found.Comments[0].Name)
}

func (s *PostRepoIntegrationTestSuite) Test_List_NewestFirst() {
	ctx := context.Background()

	older := s.newPost("older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	s.Require().NoError(s.postRepo.Save(ctx, older))

	newer := s.newPost("newer")
	s.Require().NoError(s.postRepo.Save(ctx, newer))

	posts, err := s.postRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(posts), 2)

	var olderIdx, newerIdx int
	for i, p := range posts {
		switch p.ID {
		case older.ID:
			olderIdx = i
		case newer.ID:
			newerIdx = i
		}
	}
	s.Less(newerIdx, olderIdx)
}

func (s *PostRepoIntegrationTestSuite) Test_Delete() {
	ctx := context.Background()

	saved := s.newPost("to be deleted")
	s.Require().NoError(s.postRepo.Save(ctx, saved))

	s.Require().NoError(s.postRepo.Delete(ctx, saved.ID))
	_, err := s.postRepo.FindByID(ctx, saved.ID)
	s.ErrorIs(err, post.ErrPostNotFound)

	s.ErrorIs(s.postRepo.Delete(ctx, saved.ID), post.ErrPostNotFound)
}

func (s *PostRepoIntegrationTestSuite) Test_PostsSurviveUserDelete() {
	ctx := context.Background()

	orphanAuthor := &user.User{
		ID:           uuid.New(),
		Name:         "Leaving User",
		Email:        "leaving@example.com",
		Avatar:       "https://gravatar.com/avatar/leaving",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.userRepo.Save(ctx, orphanAuthor))

	orphan := s.newPost("orphaned")
	orphan.UserID = orphanAuthor.ID
	s.Require().NoError(s.postRepo.Save(ctx, orphan))

	s.Require().NoError(s.userRepo.Delete(ctx, orphanAuthor.ID))

	found, err := s.postRepo.FindByID(ctx, orphan.ID)
	s.Require().NoError(err)
	s.Equal("orphaned", found.Text)
}
