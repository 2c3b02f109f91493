package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"internhub/internal/ai"
	"internhub/internal/repository"

	"github.com/google/uuid"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
	kind   ai.Kind
}

func (f *fakeGenerator) Generate(_ context.Context, kind ai.Kind, contextString string) (string, error) {
	f.kind = kind
	f.prompt = contextString
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestCoverLetterService_Generate_NotAuthenticated(t *testing.T) {
	svc := NewCoverLetterService(&fakeProfileRepo{}, &fakeGenerator{}, nil)
	_, err := svc.Generate(context.Background(), uuid.Nil, GenerateInput{Role: "Intern"})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCoverLetterService_Generate_NoGeneratorConfigured(t *testing.T) {
	svc := NewCoverLetterService(&fakeProfileRepo{}, nil, nil)
	_, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{Role: "Intern"})
	if !errors.Is(err, ai.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestCoverLetterService_Generate_BuildsContextFromProfile(t *testing.T) {
	gen := &fakeGenerator{text: "Dear TechNova team,"}
	svc := NewCoverLetterService(&fakeProfileRepo{profile: repository.Profile{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		University: "Cambridge",
		Major:      "Mathematics",
		Skills:     []string{"Go", "SQL"},
		Bio:        "Analytical engines enthusiast",
	}}, gen, nil)

	text, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{
		Role:         "Backend Intern",
		Company:      "TechNova",
		Description:  "Build services",
		Requirements: "Go, SQL",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "Dear TechNova team," {
		t.Fatalf("unexpected text %q", text)
	}
	if gen.kind != ai.KindCoverLetter {
		t.Fatalf("unexpected kind %q", gen.kind)
	}

	for _, want := range []string{
		"Role: Backend Intern",
		"Company: TechNova",
		"My Background:",
		"Name: Ada Lovelace",
		"University: Cambridge",
		"Skills: Go, SQL",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.prompt)
		}
	}
}

func TestCoverLetterService_Generate_MissingFieldsBecomeNotSpecified(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := NewCoverLetterService(&fakeProfileRepo{}, gen, nil)

	if _, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, want := range []string{
		"Role: Not specified",
		"Company: Not specified",
		"Name: Not specified",
		"Skills: Not specified",
		"Bio: Not specified",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.prompt)
		}
	}
}

func TestCoverLetterService_Generate_ProfileFetchFailureStillGenerates(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := NewCoverLetterService(&fakeProfileRepo{findErr: errors.New("timeout")}, gen, nil)

	if _, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{Role: "Intern"}); err != nil {
		t.Fatalf("profile failure must not block generation, got %v", err)
	}
	if !strings.Contains(gen.prompt, "Name: Not specified") {
		t.Fatalf("expected placeholder background, got:\n%s", gen.prompt)
	}
}

func TestCoverLetterService_Generate_GenerationFailurePassesThrough(t *testing.T) {
	genErr := errors.New("generation failed: quota exceeded")
	svc := NewCoverLetterService(&fakeProfileRepo{}, &fakeGenerator{err: genErr}, nil)

	_, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{Role: "Intern"})
	if !errors.Is(err, genErr) {
		t.Fatalf("expected generator error, got %v", err)
	}
}
