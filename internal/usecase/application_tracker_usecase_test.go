package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/internal/domain/application"
	"internhub/internal/repository"

	"github.com/google/uuid"
)

func appWithStatus(status string, appliedAt time.Time) repository.Application {
	return repository.Application{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Company:   "TechNova",
		Role:      "Backend Intern",
		Status:    status,
		AppliedAt: appliedAt,
	}
}

func TestTrackerService_ListMine_NotAuthenticated(t *testing.T) {
	svc := NewTrackerService(&fakeAppRepo{})
	_, err := svc.ListMine(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestTrackerService_ListMine_RepoError(t *testing.T) {
	svc := NewTrackerService(&fakeAppRepo{findErr: errors.New("query failed")})
	_, err := svc.ListMine(context.Background(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSummarize_CountsSumToTotal(t *testing.T) {
	now := time.Now().UTC()
	apps := []repository.Application{
		appWithStatus("pending", now),
		appWithStatus("pending", now),
		appWithStatus("interview", now),
		appWithStatus("accepted", now),
	}

	s := Summarize(apps)
	if s.Total != 4 {
		t.Fatalf("expected total 4, got %d", s.Total)
	}
	if s.ByStatus[application.StatusPending] != 2 {
		t.Fatalf("expected 2 pending, got %d", s.ByStatus[application.StatusPending])
	}
	if s.ByStatus[application.StatusInterview] != 1 || s.ByStatus[application.StatusAccepted] != 1 {
		t.Fatalf("unexpected buckets: %v", s.ByStatus)
	}
	if s.ByStatus[application.StatusReviewing] != 0 || s.ByStatus[application.StatusRejected] != 0 {
		t.Fatalf("empty buckets must be present and zero: %v", s.ByStatus)
	}

	sum := 0
	for _, n := range s.ByStatus {
		sum += n
	}
	if sum != s.Total {
		t.Fatalf("bucket sum %d != total %d", sum, s.Total)
	}
}

func TestSummarize_UnknownStatusCountsAsPending(t *testing.T) {
	apps := []repository.Application{
		appWithStatus("archived", time.Now().UTC()),
		appWithStatus("pending", time.Now().UTC()),
	}

	s := Summarize(apps)
	if s.ByStatus[application.StatusPending] != 2 {
		t.Fatalf("unknown status must fold into pending, got %v", s.ByStatus)
	}

	sum := 0
	for _, n := range s.ByStatus {
		sum += n
	}
	if sum != s.Total {
		t.Fatalf("bucket sum %d != total %d", sum, s.Total)
	}
}

func TestFilterByStatus_PreservesOrder(t *testing.T) {
	now := time.Now().UTC()
	first := appWithStatus("pending", now)
	second := appWithStatus("reviewing", now.Add(-time.Hour))
	third := appWithStatus("pending", now.Add(-2*time.Hour))

	got := FilterByStatus([]repository.Application{first, second, third}, application.StatusPending)
	if len(got) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != third.ID {
		t.Fatalf("filter must preserve the fetch order")
	}
}

func TestFilterByStatus_MatchesCanonicalStatus(t *testing.T) {
	unknown := appWithStatus("weird", time.Now().UTC())
	got := FilterByStatus([]repository.Application{unknown}, application.StatusPending)
	if len(got) != 1 {
		t.Fatalf("unknown statuses are canonically pending and must match the pending filter")
	}
}

func TestTrackerService_ListMine_SnapshotConsistency(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeAppRepo{items: []repository.Application{
		appWithStatus("pending", now),
		appWithStatus("rejected", now.Add(-time.Hour)),
	}}
	svc := NewTrackerService(repo)

	view, err := svc.ListMine(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Summary.Total != len(view.Applications) {
		t.Fatalf("summary total %d != list length %d", view.Summary.Total, len(view.Applications))
	}
}
