package dto

import (
	"time"

	"internhub/internal/domain/application"
	"internhub/internal/repository"
	"internhub/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID              uuid.UUID              `json:"id"`
	InternshipID    string                 `json:"internship_id"`
	Company         string                 `json:"company"`
	Role            string                 `json:"role"`
	CoverLetter     string                 `json:"cover_letter"`
	AdditionalNotes string                 `json:"additional_notes"`
	Status          string                 `json:"status"`
	Affordance      application.Affordance `json:"affordance"`
	AppliedAt       time.Time              `json:"applied_at"`
}

func FromApplication(a repository.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		InternshipID:    a.InternshipID,
		Company:         a.Company,
		Role:            a.Role,
		CoverLetter:     a.CoverLetter,
		AdditionalNotes: a.AdditionalNotes,
		Status:          a.Status,
		Affordance:      application.Canonical(a.Status).Affordance(),
		AppliedAt:       a.AppliedAt,
	}
}

type TrackerSummaryResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type TrackerResponse struct {
	Applications []ApplicationResponse  `json:"applications"`
	Summary      TrackerSummaryResponse `json:"summary"`
}

func FromTrackerView(v usecase.TrackerView, filtered []repository.Application) TrackerResponse {
	items := make([]ApplicationResponse, 0, len(filtered))
	for _, a := range filtered {
		items = append(items, FromApplication(a))
	}

	byStatus := make(map[string]int, len(v.Summary.ByStatus))
	for st, n := range v.Summary.ByStatus {
		byStatus[string(st)] = n
	}

	return TrackerResponse{
		Applications: items,
		Summary: TrackerSummaryResponse{
			Total:    v.Summary.Total,
			ByStatus: byStatus,
		},
	}
}
