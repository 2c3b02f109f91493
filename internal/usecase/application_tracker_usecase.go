package usecase

import (
	"context"

	"internhub/internal/domain/application"
	"internhub/internal/repository"

	"github.com/google/uuid"
)

// TrackerView is one fetched snapshot: the full list plus counts derived from
// it, so the per-status counts always sum to the total.
type TrackerView struct {
	Applications []repository.Application
	Summary      Summary
}

type Summary struct {
	Total    int
	ByStatus map[application.Status]int
}

type TrackerUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) (TrackerView, error)
}

type TrackerService struct {
	apps repository.ApplicationRepository
}

func NewTrackerService(apps repository.ApplicationRepository) *TrackerService {
	return &TrackerService{apps: apps}
}

func (s *TrackerService) ListMine(ctx context.Context, userID uuid.UUID) (TrackerView, error) {
	if userID == uuid.Nil {
		return TrackerView{}, ErrNotAuthenticated
	}

	apps, err := s.apps.FindByUserID(ctx, userID)
	if err != nil {
		return TrackerView{}, ErrInternal
	}

	return TrackerView{
		Applications: apps,
		Summary:      Summarize(apps),
	}, nil
}

// Summarize buckets every record into the closed status set. Unrecognized
// statuses count as pending, so the sum over buckets equals the total.
func Summarize(apps []repository.Application) Summary {
	byStatus := make(map[application.Status]int, len(application.AllStatuses()))
	for _, st := range application.AllStatuses() {
		byStatus[st] = 0
	}
	for _, a := range apps {
		byStatus[application.Canonical(a.Status)]++
	}
	return Summary{Total: len(apps), ByStatus: byStatus}
}

// FilterByStatus keeps records whose canonical status matches, preserving the
// fetch order.
func FilterByStatus(apps []repository.Application, st application.Status) []repository.Application {
	out := make([]repository.Application, 0, len(apps))
	for _, a := range apps {
		if application.Canonical(a.Status) == st {
			out = append(out, a)
		}
	}
	return out
}
