package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/devconnect/api/internal/domain/profile"
	"github.com/devconnect/api/pkg/apperror"
)

type ExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// AddExperience prepends a new entry. A caller without a profile gets an
// internal error: profiles are never auto-created here, matching the
// behavior clients already rely on.
func (uc *ProfileUseCase) AddExperience(ctx context.Context, input ExperienceInput) (*profile.Profile, error) {
	p, err := uc.requireProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entry := profile.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	p.Experience = append([]profile.Experience{entry}, p.Experience...)

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience deletes the entry with the given id. An unknown id is a
// no-op, but the profile is saved either way (see DESIGN.md on the
// splice(-1) divergence from the original).
func (uc *ProfileUseCase) RemoveExperience(ctx context.Context, userID uuid.UUID, rawEntryID string) (*profile.Profile, error) {
	p, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entryID, err := uuid.Parse(rawEntryID); err == nil {
		p.RemoveExperience(entryID)
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) AddEducation(ctx context.Context, input EducationInput) (*profile.Profile, error) {
	p, err := uc.requireProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entry := profile.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	p.Education = append([]profile.Education{entry}, p.Education...)

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) RemoveEducation(ctx context.Context, userID uuid.UUID, rawEntryID string) (*profile.Profile, error) {
	p, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entryID, err := uuid.Parse(rawEntryID); err == nil {
		p.RemoveEducation(entryID)
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) requireProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewInternal("profile must be created before adding history entries", err)
		}
		return nil, err
	}
	return p, nil
}
