package handler

import (
	"errors"

	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveProfileRequest struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	University     string   `json:"university"`
	Major          string   `json:"major"`
	GraduationYear string   `json:"graduation_year"`
	GPA            string   `json:"gpa"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Put("/profile", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	view, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(view.Profile, view.Loaded))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	saved, err := h.uc.Save(c.Context(), userID, usecase.SaveProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		GPA:            req.GPA,
		Bio:            req.Bio,
		Skills:         req.Skills,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile saved successfully!", dto.FromProfile(saved, true))
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var remote *usecase.RemoteError
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.As(err, &remote):
		// The store's message travels to the caller so they know the write
		// did not apply.
		return middleware.NewAppError(fiber.StatusBadGateway, "Error saving profile: "+remote.Unwrap().Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
