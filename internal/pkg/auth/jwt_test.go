package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "campushub.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "jane@campushub.app",
		Role:  models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %s, want %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.Issuer != "campushub.test" {
		t.Errorf("claims.Issuer = %q, want campushub.test", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted token signed with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("ValidateToken() accepted malformed token")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
