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

type fakeAppRepo struct {
	created []repository.Application
	items   []repository.Application
	err     error
	findErr error
}

func (f *fakeAppRepo) Create(_ context.Context, a repository.Application) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAppRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Application, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.items, nil
}

type fakeNotifRepo struct {
	created []repository.Notification
	err     error
}

func (f *fakeNotifRepo) Create(_ context.Context, n repository.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Notification, error) {
	return f.created, nil
}

func (f *fakeNotifRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeNotifRepo) MarkAllRead(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func validSubmitInput() SubmitInput {
	return SubmitInput{
		InternshipID:    "intern-1",
		Company:         "TechNova",
		Role:            "Backend Intern",
		CoverLetter:     "Dear hiring team, I would love to join.",
		AdditionalNotes: "Available from June",
	}
}

func TestApplicationService_Submit_EmptyCoverLetter(t *testing.T) {
	apps := &fakeAppRepo{}
	notifs := &fakeNotifRepo{}
	svc := NewApplicationService(apps, notifs, nil)

	for _, letter := range []string{"", "   ", "\n\t"} {
		in := validSubmitInput()
		in.CoverLetter = letter
		_, err := svc.Submit(context.Background(), uuid.New(), in)
		if !errors.Is(err, ErrCoverLetterRequired) {
			t.Fatalf("letter %q: expected ErrCoverLetterRequired, got %v", letter, err)
		}
	}
	if len(apps.created) != 0 || len(notifs.created) != 0 {
		t.Fatalf("expected no writes, got %d applications and %d notifications", len(apps.created), len(notifs.created))
	}
}

func TestApplicationService_Submit_NotAuthenticated(t *testing.T) {
	apps := &fakeAppRepo{}
	svc := NewApplicationService(apps, &fakeNotifRepo{}, nil)

	_, err := svc.Submit(context.Background(), uuid.Nil, validSubmitInput())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(apps.created) != 0 {
		t.Fatalf("expected no application writes, got %d", len(apps.created))
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	apps := &fakeAppRepo{}
	notifs := &fakeNotifRepo{}
	svc := NewApplicationService(apps, notifs, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	userID := uuid.New()
	in := validSubmitInput()
	in.CoverLetter = "  Dear team, here I am.  "

	app, err := svc.Submit(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(apps.created) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps.created))
	}
	if len(notifs.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs.created))
	}

	got := apps.created[0]
	if got.Status != string(application.StatusPending) {
		t.Fatalf("expected pending status, got %q", got.Status)
	}
	if got.CoverLetter != "Dear team, here I am." {
		t.Fatalf("expected trimmed cover letter, got %q", got.CoverLetter)
	}
	if got.ID != app.ID {
		t.Fatalf("returned application does not match stored one")
	}

	n := notifs.created[0]
	if n.UserID != userID {
		t.Fatalf("notification owner mismatch")
	}
	if n.Title != "Application Submitted" {
		t.Fatalf("unexpected notification title %q", n.Title)
	}
	if n.Message != "Your application for Backend Intern at TechNova has been submitted successfully!" {
		t.Fatalf("unexpected notification message %q", n.Message)
	}
	if n.Type != "success" || n.Link != "/applications" {
		t.Fatalf("unexpected notification type/link %q %q", n.Type, n.Link)
	}
}

func TestApplicationService_Submit_ApplicationWriteFails(t *testing.T) {
	apps := &fakeAppRepo{err: errors.New("insert failed")}
	notifs := &fakeNotifRepo{}
	svc := NewApplicationService(apps, notifs, nil)

	_, err := svc.Submit(context.Background(), uuid.New(), validSubmitInput())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(notifs.created) != 0 {
		t.Fatalf("notification must not be written when the application write fails")
	}
}

func TestApplicationService_Submit_NotificationWriteFails(t *testing.T) {
	apps := &fakeAppRepo{}
	notifs := &fakeNotifRepo{err: errors.New("insert failed")}
	svc := NewApplicationService(apps, notifs, nil)

	app, err := svc.Submit(context.Background(), uuid.New(), validSubmitInput())
	if err != nil {
		t.Fatalf("notification failure must not fail the submission, got %v", err)
	}
	if len(apps.created) != 1 || apps.created[0].ID != app.ID {
		t.Fatalf("application must still be stored")
	}
}

func TestApplicationService_Submit_MissingListingFields(t *testing.T) {
	svc := NewApplicationService(&fakeAppRepo{}, &fakeNotifRepo{}, nil)

	in := validSubmitInput()
	in.Company = "  "
	_, err := svc.Submit(context.Background(), uuid.New(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
