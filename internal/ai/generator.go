package ai

import (
	"context"
	"errors"
)

// Kind selects the writing task for the generation endpoint.
type Kind string

const (
	KindCoverLetter Kind = "cover_letter"
)

var ErrGenerationFailed = errors.New("generation failed")

// Generator is a stateless text-generation endpoint: context in, text out.
type Generator interface {
	Generate(ctx context.Context, kind Kind, contextString string) (string, error)
}

func systemPromptFor(kind Kind) string {
	switch kind {
	case KindCoverLetter:
		return `You are a writing assistant for students applying to internships.
Write a professional, personalized cover letter based on the role, company and
candidate background provided. Keep it to three or four short paragraphs.
Return plain text only, no markdown, no salutation placeholders.`
	default:
		return "You are a concise writing assistant. Return plain text only."
	}
}
