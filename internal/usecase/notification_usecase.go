package usecase

import (
	"context"
	"errors"

	"internhub/internal/repository"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]repository.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationService struct {
	notifs repository.NotificationRepository
}

func NewNotificationService(notifs repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifs: notifs}
}

func (s *NotificationService) ListMine(ctx context.Context, userID uuid.UUID) ([]repository.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	items, err := s.notifs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := s.notifs.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, ErrNotAuthenticated
	}
	n, err := s.notifs.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
