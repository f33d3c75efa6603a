package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	pkgauth "github.com/savconnect/savconnect-api/pkg/auth"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field)        {}
func (nopLogger) Info(string, ...zap.Field)         {}
func (nopLogger) Warn(string, ...zap.Field)         {}
func (nopLogger) Error(string, error, ...zap.Field) {}
func (nopLogger) Fatal(string, error, ...zap.Field) {}
func (l nopLogger) With(...zap.Field) logger.Logger { return l }

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatarURL string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Avatar = avatarURL
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func newRegisterUseCase() (*RegisterUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return NewRegisterUseCase(repo, jwtSvc, nopLogger{}), repo
}

func TestRegister_CreatesUserWithDefaultAvatar(t *testing.T) {
	uc, repo := newRegisterUseCase()

	out, err := uc.Execute(context.Background(), RegisterInput{
		Email:    "Dev@Example.com",
		Name:     "Dev",
		Password: "a_long_password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	stored, err := repo.FindByID(context.Background(), out.UserID)
	require.NoError(t, err)
	assert.Equal(t, DefaultAvatarURL("Dev@Example.com"), stored.Avatar)
	assert.True(t, strings.HasPrefix(stored.Avatar, "https://www.gravatar.com/avatar/"))
	assert.True(t, pkgauth.CheckPasswordHash("a_long_password", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newRegisterUseCase()

	input := RegisterInput{Email: "dup@example.com", Name: "Dup", Password: "a_long_password"}
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestDefaultAvatarURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, DefaultAvatarURL("dev@example.com"), DefaultAvatarURL("  DEV@Example.COM "))
	assert.NotEqual(t, DefaultAvatarURL("dev@example.com"), DefaultAvatarURL("other@example.com"))
	assert.Contains(t, DefaultAvatarURL("dev@example.com"), "s=200")
}
