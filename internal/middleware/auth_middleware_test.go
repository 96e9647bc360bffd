package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/auth"
)

func newTestRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{m.JWTAuth()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := c.Get(ContextUserID)
		role, _ := c.Get(ContextRole)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})

	router.GET("/protected", handlers...)
	return router
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.Role) (string, uuid.UUID) {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: "user@campushub.app", Role: role}
	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token, user.ID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body.Error
}

func TestJWTAuthValidToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	token, userID := issueToken(t, svc, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["userId"] != userID.String() {
		t.Errorf("userId in context = %v, want %s", body["userId"], userID)
	}
	if body["role"] != string(models.RoleStudent) {
		t.Errorf("role in context = %v, want student", body["role"])
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if detail := decodeError(t, w); detail == nil || detail.Code != dto.ErrorCodeUnauthorized {
		t.Errorf("error code = %v, want %s", detail, dto.ErrorCodeUnauthorized)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
	router := newTestRouter(NewAuthMiddleware(expired))

	token, _ := issueToken(t, expired, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if detail := decodeError(t, w); detail == nil || detail.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("error code = %v, want %s", detail, dto.ErrorCodeExpiredToken)
	}
}

func TestJWTAuthTamperedToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	token, _ := issueToken(t, svc, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	m := NewAuthMiddleware(svc)
	router := newTestRouter(m, m.RoleRequired(string(models.RoleAdmin)))

	tests := []struct {
		name       string
		role       models.Role
		wantStatus int
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK},
		{"student forbidden", models.RoleStudent, http.StatusForbidden},
		{"teacher forbidden", models.RoleTeacher, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := issueToken(t, svc, tt.role)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
