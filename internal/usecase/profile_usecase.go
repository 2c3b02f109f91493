package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"internhub/internal/repository"

	"github.com/google/uuid"
)

type ProfileView struct {
	Profile repository.Profile
	// Loaded is false when no identity was resolved; the zero profile is
	// returned without error in that case.
	Loaded bool
}

type SaveProfileInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	University     string
	Major          string
	GraduationYear string
	GPA            string
	Bio            string
	Skills         []string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ProfileView, error)
	Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (repository.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
	logger   *log.Logger
}

func NewProfileService(profiles repository.ProfileRepository, logger *log.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, logger: logger}
}

// Get never fails the caller: absent rows and fetch errors both resolve to a
// zero-valued profile. Callers see empty strings and an empty skill set, not
// nil fields.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	if userID == uuid.Nil {
		return ProfileView{Profile: emptyProfile(uuid.Nil), Loaded: false}, nil
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) && s.logger != nil {
			s.logger.Printf("profile fetch failed, returning defaults | user=%s err=%v", userID, err)
		}
		return ProfileView{Profile: emptyProfile(userID), Loaded: true}, nil
	}

	if p.Skills == nil {
		p.Skills = []string{}
	}
	return ProfileView{Profile: p, Loaded: true}, nil
}

func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (repository.Profile, error) {
	if userID == uuid.Nil {
		return repository.Profile{}, ErrNotAuthenticated
	}

	p := repository.Profile{
		UserID:         userID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		University:     strings.TrimSpace(in.University),
		Major:          strings.TrimSpace(in.Major),
		GraduationYear: strings.TrimSpace(in.GraduationYear),
		GPA:            strings.TrimSpace(in.GPA),
		Bio:            strings.TrimSpace(in.Bio),
		Skills:         normalizeSkills(in.Skills),
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		// The store's message reaches the user; in-memory state is theirs to
		// keep, the write did not apply.
		return repository.Profile{}, &RemoteError{Op: "save profile", Err: err}
	}

	return p, nil
}

func emptyProfile(userID uuid.UUID) repository.Profile {
	return repository.Profile{UserID: userID, Skills: []string{}}
}

// Skill uniqueness is the UI's job; the store keeps whatever order the caller
// sent, minus blank entries.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.TrimSpace(sk)
		if sk == "" {
			continue
		}
		out = append(out, sk)
	}
	return out
}
