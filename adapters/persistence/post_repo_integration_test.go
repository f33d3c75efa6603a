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

	"github.com/savconnect/savconnect-api/internal/domain/identity"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/internal/domain/user"
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
		Email:        "author@example.com",
		Name:         "Test Author",
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

func (s *PostRepoIntegrationTestSuite) authorIdentity() identity.Identity {
	return identity.Identity{
		ID:     s.author.ID,
		Name:   s.author.Name,
		Avatar: s.author.Avatar,
	}
}

func (s *PostRepoIntegrationTestSuite) newPost(text string, now time.Time) *post.Post {
	p, err := post.New(s.authorIdentity(), text, now)
	s.Require().NoError(err)
	return p
}

func (s *PostRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	newPost := s.newPost("hello from the integration suite", time.Now().UTC())

	err := s.postRepo.Save(ctx, newPost)
	s.NoError(err)

	found, err := s.postRepo.FindByID(ctx, newPost.ID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(newPost.Text, found.Text)
	s.Equal(s.author.ID, found.AuthorID)
	s.Equal(s.author.Name, found.Name)
	s.Empty(found.Likes)
	s.Empty(found.Comments)
}

func (s *PostRepoIntegrationTestSuite) Test_Update_RoundTrips_EmbeddedLists() {
	ctx := context.Background()

	p := s.newPost("a post that collects reactions", time.Now().UTC())
	s.NoError(s.postRepo.Save(ctx, p))

	liker := uuid.New()
	s.NoError(p.Like(liker))
	_, err := p.AddComment(identity.Identity{ID: liker, Name: "Commenter"}, "nice post", time.Now().UTC())
	s.NoError(err)

	s.NoError(s.postRepo.Update(ctx, p))

	found, err := s.postRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.Len(found.Likes, 1)
	s.Equal(liker, found.Likes[0].UserID)
	s.Len(found.Comments, 1)
	s.Equal("nice post", found.Comments[0].Text)
	s.Equal("Commenter", found.Comments[0].Name)
}

func (s *PostRepoIntegrationTestSuite) Test_Update_MissingPost() {
	ctx := context.Background()

	ghost := s.newPost("never saved", time.Now().UTC())

	err := s.postRepo.Update(ctx, ghost)
	s.ErrorIs(err, post.ErrPostNotFound)
}

func (s *PostRepoIntegrationTestSuite) Test_Delete() {
	ctx := context.Background()

	p := s.newPost("short-lived", time.Now().UTC())
	s.NoError(s.postRepo.Save(ctx, p))

	s.NoError(s.postRepo.Delete(ctx, p.ID))

	_, err := s.postRepo.FindByID(ctx, p.ID)
	s.ErrorIs(err, post.ErrPostNotFound)

	err = s.postRepo.Delete(ctx, p.ID)
	s.ErrorIs(err, post.ErrPostNotFound)
}

func (s *PostRepoIntegrationTestSuite) Test_List_NewestFirst() {
	ctx := context.Background()

	base := time.Now().UTC().Add(1 * time.Hour)
	older := s.newPost("older entry", base)
	newer := s.newPost("newer entry", base.Add(1*time.Minute))

	s.NoError(s.postRepo.Save(ctx, older))
	s.NoError(s.postRepo.Save(ctx, newer))

	posts, err := s.postRepo.List(ctx, 2, 0)

	s.NoError(err)
	s.Len(posts, 2)
	s.Equal(newer.ID, posts[0].ID)
	s.Equal(older.ID, posts[1].ID)
}
