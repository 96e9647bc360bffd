package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/auth"
)

// fakeUserStore is an in-memory userAccountStore keyed by email.
type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		store.users[u.Email] = u
	}
	return store
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string, _ uuid.UUID) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = uuid.New()
	s.users[user.Email] = user
	return nil
}

func newTestAuthService(store userAccountStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})
	return &authService{userRepo: store, jwtService: jwtService}
}

func storedUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	return &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: hash,
		Role:     models.RoleStudent,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := storedUser(t, "jane@campushub.app", "correct-horse-9")
	svc := newTestAuthService(newFakeUserStore(user))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@campushub.app",
		Password: "correct-horse-9",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Error("Login() did not return the authenticated account")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(storedUser(t, "jane@campushub.app", "correct-horse-9")))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@campushub.app",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@campushub.app",
		Password: "whatever-123",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials for unknown account", err)
	}
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), &dto.SignupRequest{
		Email:    "new@campushub.app",
		Password: "fresh-pass-77",
		Role:     "teacher",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Register() returned empty token")
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "new@campushub.app",
		Password: "fresh-pass-77",
	}); err != nil {
		t.Errorf("Login() after Register() error = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(storedUser(t, "taken@campushub.app", "some-pass-11")))

	_, err := svc.Register(context.Background(), &dto.SignupRequest{
		Email:    "taken@campushub.app",
		Password: "another-pass-22",
		Role:     "student",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), &dto.SignupRequest{
		Email:    "new@campushub.app",
		Password: "fresh-pass-77",
		Role:     "superuser",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Register() error = %v, want ErrValidationFailed", err)
	}
}
