package repository

import (
	"context"
	"errors"
	"time"

	"internhub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSettingsNotFound = errors.New("settings not found")

type UserSettings struct {
	UserID             uuid.UUID
	EmailNotifications bool
	PushNotifications  bool
	InternshipAlerts   bool
	WeeklyDigest       bool
	ApplicationUpdates bool
	ProfileVisible     bool
	ShowEmail          bool
	ShowPhone          bool
	UpdatedAt          time.Time
}

// DefaultSettings mirrors the column defaults so a user without a row reads
// the same values a fresh insert would produce.
func DefaultSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  false,
		InternshipAlerts:   true,
		WeeklyDigest:       true,
		ApplicationUpdates: true,
		ProfileVisible:     true,
		ShowEmail:          false,
		ShowPhone:          false,
	}
}

type SettingsRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (UserSettings, error)
	Upsert(ctx context.Context, s UserSettings) error
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (UserSettings, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, email_notifications, push_notifications, internship_alerts,
		        weekly_digest, application_updates, profile_visible, show_email,
		        show_phone, updated_at
		 FROM user_settings
		 WHERE user_id = $1`,
		userID,
	)

	var s UserSettings
	err := row.Scan(
		&s.UserID, &s.EmailNotifications, &s.PushNotifications, &s.InternshipAlerts,
		&s.WeeklyDigest, &s.ApplicationUpdates, &s.ProfileVisible, &s.ShowEmail,
		&s.ShowPhone, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserSettings{}, ErrSettingsNotFound
		}
		return UserSettings{}, err
	}
	return s, nil
}

func (r *PostgresSettingsRepository) Upsert(ctx context.Context, s UserSettings) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_settings (user_id, email_notifications, push_notifications,
		                            internship_alerts, weekly_digest, application_updates,
		                            profile_visible, show_email, show_phone, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   email_notifications = EXCLUDED.email_notifications,
		   push_notifications = EXCLUDED.push_notifications,
		   internship_alerts = EXCLUDED.internship_alerts,
		   weekly_digest = EXCLUDED.weekly_digest,
		   application_updates = EXCLUDED.application_updates,
		   profile_visible = EXCLUDED.profile_visible,
		   show_email = EXCLUDED.show_email,
		   show_phone = EXCLUDED.show_phone,
		   updated_at = now()`,
		s.UserID, s.EmailNotifications, s.PushNotifications, s.InternshipAlerts,
		s.WeeklyDigest, s.ApplicationUpdates, s.ProfileVisible, s.ShowEmail, s.ShowPhone,
	)
	return err
}
