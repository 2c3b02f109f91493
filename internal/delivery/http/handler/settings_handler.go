package handler

import (
	"errors"

	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"
	ucuser "internhub/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type SettingsHandler struct {
	settings usecase.SettingsUsecase
	account  *ucuser.Service
}

type updateSettingsRequest struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	InternshipAlerts   bool `json:"internship_alerts"`
	WeeklyDigest       bool `json:"weekly_digest"`
	ApplicationUpdates bool `json:"application_updates"`
	ProfileVisible     bool `json:"profile_visible"`
	ShowEmail          bool `json:"show_email"`
	ShowPhone          bool `json:"show_phone"`
}

type updateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func NewSettingsHandler(settings usecase.SettingsUsecase, account *ucuser.Service) *SettingsHandler {
	return &SettingsHandler{settings: settings, account: account}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
	r.Put("/settings/account", h.UpdateAccount)
}

func (h *SettingsHandler) Get(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	st, err := h.settings.Get(c.Context(), userID)
	if err != nil {
		return mapSettingsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSettings(st))
}

func (h *SettingsHandler) Update(c fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	st, err := h.settings.Update(c.Context(), userID, usecase.UpdateSettingsInput{
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		InternshipAlerts:   req.InternshipAlerts,
		WeeklyDigest:       req.WeeklyDigest,
		ApplicationUpdates: req.ApplicationUpdates,
		ProfileVisible:     req.ProfileVisible,
		ShowEmail:          req.ShowEmail,
		ShowPhone:          req.ShowPhone,
	})
	if err != nil {
		return mapSettingsUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Settings saved", dto.FromSettings(st))
}

func (h *SettingsHandler) UpdateAccount(c fiber.Ctx) error {
	var req updateAccountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	usr, err := h.account.UpdateAccount(c.Context(), userID, ucuser.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucuser.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, "Account updated", usr)
}

func mapSettingsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
