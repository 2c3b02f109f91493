package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"internhub/internal/domain/application"
	"internhub/internal/repository"
	"internhub/internal/ws"

	"github.com/google/uuid"
)

var ErrCoverLetterRequired = errors.New("cover letter required")

type SubmitInput struct {
	InternshipID    string
	Company         string
	Role            string
	CoverLetter     string
	AdditionalNotes string
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (repository.Application, error)
}

// ApplicationService runs the submission workflow: validate, write the
// application, then write the companion notification. The notification write
// is best-effort; the application record is authoritative and is never rolled
// back when the notification fails.
type ApplicationService struct {
	apps   repository.ApplicationRepository
	notifs repository.NotificationRepository
	logger *log.Logger
	now    func() time.Time
}

func NewApplicationService(apps repository.ApplicationRepository, notifs repository.NotificationRepository, logger *log.Logger) *ApplicationService {
	return &ApplicationService{
		apps:   apps,
		notifs: notifs,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ApplicationService) Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (repository.Application, error) {
	letter := strings.TrimSpace(in.CoverLetter)
	if letter == "" {
		return repository.Application{}, ErrCoverLetterRequired
	}

	if userID == uuid.Nil {
		return repository.Application{}, ErrNotAuthenticated
	}

	internshipID := strings.TrimSpace(in.InternshipID)
	company := strings.TrimSpace(in.Company)
	role := strings.TrimSpace(in.Role)
	if internshipID == "" || company == "" || role == "" {
		return repository.Application{}, ErrInvalidInput
	}

	app := repository.Application{
		ID:              uuid.New(),
		UserID:          userID,
		InternshipID:    internshipID,
		Company:         company,
		Role:            role,
		CoverLetter:     letter,
		AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
		Status:          string(application.StatusPending),
		AppliedAt:       s.now().UTC(),
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return repository.Application{}, ErrInternal
	}

	// The application is committed at this point. A notification failure is
	// logged and swallowed, not surfaced as a submission failure.
	s.notifySubmitted(ctx, app)

	return app, nil
}

func (s *ApplicationService) notifySubmitted(ctx context.Context, app repository.Application) {
	n := repository.Notification{
		ID:        uuid.New(),
		UserID:    app.UserID,
		Title:     "Application Submitted",
		Message:   fmt.Sprintf("Your application for %s at %s has been submitted successfully!", app.Role, app.Company),
		Type:      "success",
		Link:      "/applications",
		CreatedAt: s.now().UTC(),
	}

	if err := s.notifs.Create(ctx, n); err != nil {
		if s.logger != nil {
			s.logger.Printf("notification write failed | application=%s user=%s err=%v", app.ID, app.UserID, err)
		}
		return
	}

	ws.NotifyNotificationCreated(n.UserID, n.ID, n.Title, n.Message, n.Link)
}
