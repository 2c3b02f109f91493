package usecase

import (
	"context"
	"errors"

	"internhub/internal/repository"

	"github.com/google/uuid"
)

type UpdateSettingsInput struct {
	EmailNotifications bool
	PushNotifications  bool
	InternshipAlerts   bool
	WeeklyDigest       bool
	ApplicationUpdates bool
	ProfileVisible     bool
	ShowEmail          bool
	ShowPhone          bool
}

type SettingsUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (repository.UserSettings, error)
	Update(ctx context.Context, userID uuid.UUID, in UpdateSettingsInput) (repository.UserSettings, error)
}

type SettingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the column defaults for users who never saved settings; the
// row is only created on the first update.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (repository.UserSettings, error) {
	if userID == uuid.Nil {
		return repository.UserSettings{}, ErrNotAuthenticated
	}

	st, err := s.settings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return repository.DefaultSettings(userID), nil
		}
		return repository.UserSettings{}, ErrInternal
	}
	return st, nil
}

func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, in UpdateSettingsInput) (repository.UserSettings, error) {
	if userID == uuid.Nil {
		return repository.UserSettings{}, ErrNotAuthenticated
	}

	st := repository.UserSettings{
		UserID:             userID,
		EmailNotifications: in.EmailNotifications,
		PushNotifications:  in.PushNotifications,
		InternshipAlerts:   in.InternshipAlerts,
		WeeklyDigest:       in.WeeklyDigest,
		ApplicationUpdates: in.ApplicationUpdates,
		ProfileVisible:     in.ProfileVisible,
		ShowEmail:          in.ShowEmail,
		ShowPhone:          in.ShowPhone,
	}

	if err := s.settings.Upsert(ctx, st); err != nil {
		return repository.UserSettings{}, ErrInternal
	}
	return st, nil
}
