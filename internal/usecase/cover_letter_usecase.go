package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"internhub/internal/ai"
	"internhub/internal/repository"

	"github.com/google/uuid"
)

const notSpecified = "Not specified"

type GenerateInput struct {
	Role         string
	Company      string
	Description  string
	Requirements string
}

type CoverLetterUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (string, error)
}

type CoverLetterService struct {
	profiles repository.ProfileRepository
	gen      ai.Generator
	logger   *log.Logger
}

func NewCoverLetterService(profiles repository.ProfileRepository, gen ai.Generator, logger *log.Logger) *CoverLetterService {
	return &CoverLetterService{profiles: profiles, gen: gen, logger: logger}
}

// Generate builds the personalization context from the listing and the
// caller's profile and sends it to the generation endpoint. A profile fetch
// failure falls back to an empty profile; a generation failure is returned
// as-is so the caller keeps its current draft.
func (s *CoverLetterService) Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (string, error) {
	if userID == uuid.Nil {
		return "", ErrNotAuthenticated
	}
	if s.gen == nil {
		return "", ai.ErrGenerationFailed
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		if s.logger != nil {
			s.logger.Printf("profile fetch failed, generating without background | user=%s err=%v", userID, err)
		}
		profile = repository.Profile{}
	}

	prompt := buildCoverLetterContext(in, profile)

	text, err := s.gen.Generate(ctx, ai.KindCoverLetter, prompt)
	if err != nil {
		return "", err
	}
	return text, nil
}

func buildCoverLetterContext(in GenerateInput, p repository.Profile) string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))

	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s\n", orNotSpecified(in.Role))
	fmt.Fprintf(&b, "Company: %s\n", orNotSpecified(in.Company))
	fmt.Fprintf(&b, "Description: %s\n", orNotSpecified(in.Description))
	fmt.Fprintf(&b, "Requirements: %s\n", orNotSpecified(in.Requirements))
	b.WriteString("\nMy Background:\n")
	fmt.Fprintf(&b, "Name: %s\n", orNotSpecified(name))
	fmt.Fprintf(&b, "University: %s\n", orNotSpecified(p.University))
	fmt.Fprintf(&b, "Major: %s\n", orNotSpecified(p.Major))
	fmt.Fprintf(&b, "Skills: %s\n", orNotSpecified(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(&b, "Bio: %s\n", orNotSpecified(p.Bio))
	return b.String()
}

func orNotSpecified(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notSpecified
	}
	return v
}
