package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/internal/domain/user"
	"internhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

type fakeSessionStore struct {
	revoked map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{revoked: map[string]bool{}}
}

func (f *fakeSessionStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func newTestService(users user.Repository, sessions SessionStore) *Service {
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 720*time.Hour)
	return NewService(users, jwtSvc, sessions, nil)
}

func TestService_Register_And_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeSessionStore())

	u, pair, err := svc.Register(context.Background(), RegisterInput{Email: " Ada@Example.com ", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a token pair")
	}

	if _, _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeSessionStore())

	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeSessionStore())
	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	u := user.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: string(hash)}
	_ = repo.Create(context.Background(), u)

	svc := newTestService(repo, newFakeSessionStore())
	_, _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Refresh_RotatesAndRevokes(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(repo, sessions)

	_, pair, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh must rotate the refresh token")
	}

	// The old token was revoked by the exchange.
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for a replayed token, got %v", err)
	}

	if _, err := svc.Refresh(context.Background(), next.RefreshToken); err != nil {
		t.Fatalf("current token must still work: %v", err)
	}
}

func TestService_Refresh_RejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeSessionStore())

	_, pair, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestService_Logout_RevokesToken(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(repo, sessions)

	_, pair, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 {
		t.Fatalf("expected one revoked token, got %d", len(sessions.revoked))
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after logout, got %v", err)
	}
}
