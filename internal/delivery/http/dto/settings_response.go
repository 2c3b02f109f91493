package dto

import "internhub/internal/repository"

type SettingsResponse struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	InternshipAlerts   bool `json:"internship_alerts"`
	WeeklyDigest       bool `json:"weekly_digest"`
	ApplicationUpdates bool `json:"application_updates"`
	ProfileVisible     bool `json:"profile_visible"`
	ShowEmail          bool `json:"show_email"`
	ShowPhone          bool `json:"show_phone"`
}

func FromSettings(s repository.UserSettings) SettingsResponse {
	return SettingsResponse{
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		InternshipAlerts:   s.InternshipAlerts,
		WeeklyDigest:       s.WeeklyDigest,
		ApplicationUpdates: s.ApplicationUpdates,
		ProfileVisible:     s.ProfileVisible,
		ShowEmail:          s.ShowEmail,
		ShowPhone:          s.ShowPhone,
	}
}
