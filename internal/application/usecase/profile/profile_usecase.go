package profile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnect/api/adapters/event"
	"github.com/devconnect/api/internal/application/service"
	"github.com/devconnect/api/internal/domain/profile"
	"github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

type EventPublisher interface {
	PublishUserEvent(ctx context.Context, payload event.UserEventPayload) error
}

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	repoLister  service.RepoLister
	publisher   EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(pRepo profile.Repository, uRepo user.Repository, lister service.RepoLister, publisher EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		repoLister:  lister,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *ProfileUseCase) GetMe(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNoProfile(userID.String())
		}
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) List(ctx context.Context) ([]*profile.Profile, error) {
	return uc.profileRepo.List(ctx)
}

// GetByUserID serves the public profile lookup. A malformed id gets the same
// "no profile" answer as a missing one, which is what clients of the old API
// expect (a 400, not a 404).
func (uc *ProfileUseCase) GetByUserID(ctx context.Context, rawUserID string) (*profile.Profile, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, apperror.NewNoProfile(rawUserID)
	}
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNoProfile(rawUserID)
		}
		return nil, err
	}
	return p, nil
}

// UpsertProfileInput carries the optional fields as pointers: nil means the
// field was absent from the request and keeps its stored value.
type UpsertProfileInput struct {
	UserID         uuid.UUID
	Company        *string
	Website        *string
	Location       *string
	Status         string
	Bio            *string
	GithubUsername *string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// Upsert creates the caller's profile or applies a partial update to it.
// Optional fields absent from the request keep their stored values; the
// social block is rebuilt from whatever links the request carries, which is
// how the old API behaved. Experience and education are managed by their own
// endpoints and survive an update.
func (uc *ProfileUseCase) Upsert(ctx context.Context, input UpsertProfileInput) (*profile.Profile, error) {
	p := &profile.Profile{
		UserID:     input.UserID,
		Experience: []profile.Experience{},
		Education:  []profile.Education{},
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		p = existing
	case errors.Is(err, profile.ErrProfileNotFound):
		// first profile for this user
	default:
		return nil, err
	}

	p.Status = strings.TrimSpace(input.Status)
	p.Skills = splitSkills(input.Skills)
	applyIfPresent(&p.Company, input.Company)
	applyIfPresent(&p.Website, input.Website)
	applyIfPresent(&p.Location, input.Location)
	applyIfPresent(&p.Bio, input.Bio)
	applyIfPresent(&p.GithubUsername, input.GithubUsername)
	p.Social = profile.SocialLinks{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Facebook:  input.Facebook,
		Linkedin:  input.Linkedin,
		Instagram: input.Instagram,
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetMe(ctx, input.UserID)
}

func applyIfPresent(dst, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// DeleteAccount removes the caller's profile and user record. Posts are left
// behind on purpose; the user.deleted event lets a consumer clean them up.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.profileRepo.Delete(ctx, userID); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.PublishUserEvent(context.Background(), event.UserEventPayload{
				EventType: event.UserEventTypeDeleted,
				UserID:    userID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'user.deleted' event", err, zap.String("user_id", userID.String()))
			}
		}()
	}
	return nil
}

func (uc *ProfileUseCase) GetGithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	return uc.repoLister.ListRepos(ctx, username)
}

func splitSkills(raw string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
