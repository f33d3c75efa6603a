package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/internal/domain/identity"
	"github.com/savconnect/savconnect-api/internal/domain/profile"
	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, userRepo user.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		userRepo:    userRepo,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}

// UpsertProfileInput carries only the fields the caller provided; nil
// pointers leave the stored value untouched on update.
type UpsertProfileInput struct {
	OwnerID  uuid.UUID
	Company  *string
	Status   *string
	Location *string
	Bio      *string
	Skills   *string // comma-delimited, split and trimmed before storage
	LinkedIn *string
	Youtube  *string
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
	Created bool
}

func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	now := time.Now().UTC()

	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	created := false
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		created = true
		p = &profile.Profile{
			OwnerID:    input.OwnerID,
			Skills:     []string{},
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
			CreatedAt:  now,
		}
	}

	// Required fields never merge to empty; a blank value counts as
	// not provided.
	if input.Company != nil && *input.Company != "" {
		p.Company = *input.Company
	}
	if input.Status != nil && *input.Status != "" {
		p.Status = *input.Status
	}
	if input.Location != nil && *input.Location != "" {
		p.Location = *input.Location
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.Skills != nil {
		p.Skills = profile.ParseSkills(*input.Skills)
	}
	if input.LinkedIn != nil {
		p.Social.LinkedIn = *input.LinkedIn
	}
	if input.Youtube != nil {
		p.Social.Youtube = *input.Youtube
	}

	if created {
		switch {
		case p.Company == "":
			return nil, apperror.NewMissingField("company")
		case p.Status == "":
			return nil, apperror.NewMissingField("status")
		case p.Location == "":
			return nil, apperror.NewMissingField("location")
		}
	}

	p.UpdatedAt = now
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &UpsertProfileOutput{Profile: p, Created: created}, nil
}

type AddExperienceInput struct {
	OwnerID uuid.UUID
	Entry   profile.Experience
}

type AddExperienceOutput struct {
	Profile *profile.Profile
	EntryID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	p, err := uc.loadOwned(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entryID, err := p.AddExperience(input.Entry)
	if err != nil {
		return nil, invalidEntry(err)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &AddExperienceOutput{Profile: p, EntryID: entryID}, nil
}

type RemoveExperienceInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

type RemoveExperienceOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, input RemoveExperienceInput) (*RemoveExperienceOutput, error) {
	p, err := uc.loadOwned(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveExperience(input.EntryID); err != nil {
		if errors.Is(err, profile.ErrExperienceNotFound) {
			return nil, apperror.NewNotFound("experience", input.EntryID.String())
		}
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &RemoveExperienceOutput{Profile: p}, nil
}

type AddEducationInput struct {
	OwnerID uuid.UUID
	Entry   profile.Education
}

type AddEducationOutput struct {
	Profile *profile.Profile
	EntryID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	p, err := uc.loadOwned(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entryID, err := p.AddEducation(input.Entry)
	if err != nil {
		return nil, invalidEntry(err)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &AddEducationOutput{Profile: p, EntryID: entryID}, nil
}

type RemoveEducationInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

type RemoveEducationOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, input RemoveEducationInput) (*RemoveEducationOutput, error) {
	p, err := uc.loadOwned(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveEducation(input.EntryID); err != nil {
		if errors.Is(err, profile.ErrEducationNotFound) {
			return nil, apperror.NewNotFound("education", input.EntryID.String())
		}
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &RemoveEducationOutput{Profile: p}, nil
}

type DeleteProfileInput struct {
	OwnerID uuid.UUID
}

// ExecuteDeleteProfile removes the profile and cascades to the owning
// user record. Posts are left in place; their lifetime is independent.
func (uc *ProfileUseCase) ExecuteDeleteProfile(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.profileRepo.Delete(ctx, input.OwnerID); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, input.OwnerID); err != nil {
		uc.logger.Error("Profile removed but user cascade failed", err, zap.String("owner_id", input.OwnerID.String()))
		return err
	}
	return nil
}

// loadOwned fetches the profile and checks the acting user owns it. The
// profile is keyed by owner so the check holds by construction, but the
// guard stays in one place for every embedded-list mutation.
func (uc *ProfileUseCase) loadOwned(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, err
	}
	if err := identity.Authorize(ownerID, p.OwnerID); err != nil {
		return nil, apperror.NewPermissionDenied("profile is owned by another user")
	}
	return p, nil
}

func invalidEntry(err error) error {
	var missing *profile.MissingFieldError
	if errors.As(err, &missing) {
		return apperror.NewMissingField(missing.Field)
	}
	return apperror.NewInvalidInput("invalid entry", err)
}
