package auth

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/auth"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type RegisterOutput struct {
	UserID      uuid.UUID
	AccessToken string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		span.RecordError(err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("user", "email already registered")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Avatar:       DefaultAvatarURL(input.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token for new user", err)
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &RegisterOutput{UserID: u.ID, AccessToken: token}, nil
}

// DefaultAvatarURL builds a Gravatar URL for the email so a fresh account
// never renders empty. Posts and comments snapshot the avatar in effect
// when they are written, so the default must exist before the first post.
func DefaultAvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", md5.Sum([]byte(normalized)))
}
