package usecase

import (
	"context"
	"errors"
	"testing"

	"internhub/internal/repository"

	"github.com/google/uuid"
)

type stubNotifRepo struct {
	items      []repository.Notification
	findErr    error
	markErr    error
	markedID   uuid.UUID
	markedAll  bool
	allUpdated int64
}

func (s *stubNotifRepo) Create(context.Context, repository.Notification) error { return nil }

func (s *stubNotifRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Notification, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.items, nil
}

func (s *stubNotifRepo) MarkRead(_ context.Context, id uuid.UUID, _ uuid.UUID) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.markedID = id
	return nil
}

func (s *stubNotifRepo) MarkAllRead(context.Context, uuid.UUID) (int64, error) {
	s.markedAll = true
	return s.allUpdated, nil
}

func TestNotificationService_ListMine_NotAuthenticated(t *testing.T) {
	svc := NewNotificationService(&stubNotifRepo{})
	_, err := svc.ListMine(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc := NewNotificationService(&stubNotifRepo{markErr: repository.ErrNotificationNotFound})
	err := svc.MarkRead(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	repo := &stubNotifRepo{}
	svc := NewNotificationService(repo)

	id := uuid.New()
	if err := svc.MarkRead(context.Background(), uuid.New(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.markedID != id {
		t.Fatalf("expected MarkRead for %s, got %s", id, repo.markedID)
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := &stubNotifRepo{allUpdated: 3}
	svc := NewNotificationService(repo)

	n, err := svc.MarkAllRead(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !repo.markedAll || n != 3 {
		t.Fatalf("expected 3 updated, got %d", n)
	}
}
