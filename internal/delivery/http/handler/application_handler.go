package handler

import (
	"errors"

	"internhub/internal/ai"
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/domain/application"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	submit  usecase.ApplicationUsecase
	tracker usecase.TrackerUsecase
	letters usecase.CoverLetterUsecase
}

type submitApplicationRequest struct {
	InternshipID    string `json:"internship_id"`
	Company         string `json:"company"`
	Role            string `json:"role"`
	CoverLetter     string `json:"cover_letter"`
	AdditionalNotes string `json:"additional_notes"`
}

type generateCoverLetterRequest struct {
	Role         string `json:"role"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

func NewApplicationHandler(submit usecase.ApplicationUsecase, tracker usecase.TrackerUsecase, letters usecase.CoverLetterUsecase) *ApplicationHandler {
	return &ApplicationHandler{submit: submit, tracker: tracker, letters: letters}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Submit)
	r.Get("/applications", h.List)
	r.Post("/applications/cover-letter", h.GenerateCoverLetter)
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var req submitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	app, err := h.submit.Submit(c.Context(), userID, usecase.SubmitInput{
		InternshipID:    req.InternshipID,
		Company:         req.Company,
		Role:            req.Role,
		CoverLetter:     req.CoverLetter,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInternal) {
			return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to submit application. Please try again.", nil, err)
		}
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully!", dto.FromApplication(app))
}

// List returns the caller's applications newest-first. An optional ?status=
// query narrows the list; the summary counts always cover the full set.
func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	view, err := h.tracker.ListMine(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	filtered := view.Applications
	if raw := c.Query("status"); raw != "" {
		st, ok := application.ParseStatus(raw)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown status filter", nil, nil)
		}
		filtered = usecase.FilterByStatus(view.Applications, st)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTrackerView(view, filtered))
}

func (h *ApplicationHandler) GenerateCoverLetter(c fiber.Ctx) error {
	var req generateCoverLetterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID := middleware.UserIDFromCtx(c)
	text, err := h.letters.Generate(c.Context(), userID, usecase.GenerateInput{
		Role:         req.Role,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"cover_letter": text})
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCoverLetterRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please write or generate a cover letter", nil, err)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ai.ErrGenerationFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Failed to generate cover letter. Please try again.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
