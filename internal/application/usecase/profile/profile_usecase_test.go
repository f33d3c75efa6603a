package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/internal/domain/profile"
	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field)        {}
func (nopLogger) Info(string, ...zap.Field)         {}
func (nopLogger) Warn(string, ...zap.Field)         {}
func (nopLogger) Error(string, error, ...zap.Field) {}
func (nopLogger) Fatal(string, error, ...zap.Field) {}
func (l nopLogger) With(...zap.Field) logger.Logger { return l }

type fakeProfileRepo struct {
	profiles map[uuid.UUID]profile.Profile
	upserts  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (r *fakeProfileRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := p
	return &cp, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*profile.Profile, error) {
	out := make([]*profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.profiles[p.OwnerID] = *p
	r.upserts++
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, ownerID uuid.UUID) error {
	if _, ok := r.profiles[ownerID]; !ok {
		return profile.ErrProfileNotFound
	}
	delete(r.profiles, ownerID)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error { r.users[u.ID] = *u; return nil }
func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
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
func (r *fakeUserRepo) UpdateAvatar(_ context.Context, id uuid.UUID, url string) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func str(s string) *string { return &s }

func newUseCase() (*ProfileUseCase, *fakeProfileRepo, *fakeUserRepo) {
	profileRepo := newFakeProfileRepo()
	userRepo := &fakeUserRepo{users: map[uuid.UUID]user.User{}}
	return NewProfileUseCase(profileRepo, userRepo, nopLogger{}), profileRepo, userRepo
}

func seedProfile(repo *fakeProfileRepo) profile.Profile {
	p := profile.Profile{
		OwnerID:   uuid.New(),
		Company:   "Acme",
		Status:    "Developer",
		Location:  "NYC",
		Bio:       "hello",
		Skills:    []string{"Go", "Postgres"},
		CreatedAt: time.Now().UTC(),
	}
	repo.profiles[p.OwnerID] = p
	return p
}

func TestUpsertProfile_CreatesWhenAbsent(t *testing.T) {
	uc, repo, _ := newUseCase()
	ownerID := uuid.New()

	out, err := uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{
		OwnerID:  ownerID,
		Company:  str("Acme"),
		Status:   str("Developer"),
		Location: str("NYC"),
		Skills:   str("Go, Postgres ,Kafka"),
	})
	require.NoError(t, err)

	assert.True(t, out.Created)
	stored := repo.profiles[ownerID]
	assert.Equal(t, "Acme", stored.Company)
	assert.Equal(t, []string{"Go", "Postgres", "Kafka"}, stored.Skills)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestUpsertProfile_CreateRequiresFields(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{
		OwnerID: uuid.New(),
		Company: str("Acme"),
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, repo.upserts)
}

func TestUpsertProfile_MergeLeavesOtherFields(t *testing.T) {
	uc, repo, _ := newUseCase()
	existing := seedProfile(repo)

	out, err := uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{
		OwnerID: existing.OwnerID,
		Bio:     str("new bio"),
	})
	require.NoError(t, err)

	assert.False(t, out.Created)
	stored := repo.profiles[existing.OwnerID]
	assert.Equal(t, "new bio", stored.Bio)
	assert.Equal(t, existing.Company, stored.Company)
	assert.Equal(t, existing.Status, stored.Status)
	assert.Equal(t, existing.Location, stored.Location)
	assert.Equal(t, existing.Skills, stored.Skills)
}

func TestUpsertProfile_EmptyRequiredFieldKeepsStoredValue(t *testing.T) {
	uc, repo, _ := newUseCase()
	existing := seedProfile(repo)

	out, err := uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{
		OwnerID:  existing.OwnerID,
		Company:  str(""),
		Status:   str(""),
		Location: str(""),
		Bio:      str(""),
	})
	require.NoError(t, err)

	assert.False(t, out.Created)
	stored := repo.profiles[existing.OwnerID]
	assert.Equal(t, existing.Company, stored.Company)
	assert.Equal(t, existing.Status, stored.Status)
	assert.Equal(t, existing.Location, stored.Location)
	assert.Empty(t, stored.Bio)
}

func TestAddExperience_Persists(t *testing.T) {
	uc, repo, _ := newUseCase()
	existing := seedProfile(repo)

	out, err := uc.ExecuteAddExperience(context.Background(), AddExperienceInput{
		OwnerID: existing.OwnerID,
		Entry: profile.Experience{
			Title:    "Eng",
			Company:  "Acme",
			Location: "NYC",
			From:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	stored := repo.profiles[existing.OwnerID]
	require.Len(t, stored.Experience, 1)
	assert.Equal(t, out.EntryID, stored.Experience[0].ID)
}

func TestAddExperience_ValidationSkipsPersist(t *testing.T) {
	uc, repo, _ := newUseCase()
	existing := seedProfile(repo)

	_, err := uc.ExecuteAddExperience(context.Background(), AddExperienceInput{
		OwnerID: existing.OwnerID,
		Entry:   profile.Experience{Company: "Acme", Location: "NYC"},
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, repo.upserts)
}

func TestRemoveExperience_NotFound(t *testing.T) {
	uc, repo, _ := newUseCase()
	existing := seedProfile(repo)

	_, err := uc.ExecuteRemoveExperience(context.Background(), RemoveExperienceInput{
		OwnerID: existing.OwnerID,
		EntryID: uuid.New(),
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Zero(t, repo.upserts)
}

func TestGetProfile_NotFound(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{OwnerID: uuid.New()})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProfile_CascadesToUser(t *testing.T) {
	uc, repo, userRepo := newUseCase()
	existing := seedProfile(repo)
	userRepo.users[existing.OwnerID] = user.User{ID: existing.OwnerID, Email: "sav@example.com"}

	err := uc.ExecuteDeleteProfile(context.Background(), DeleteProfileInput{OwnerID: existing.OwnerID})
	require.NoError(t, err)

	assert.NotContains(t, repo.profiles, existing.OwnerID)
	assert.NotContains(t, userRepo.users, existing.OwnerID)
}
