package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

func handleErrorResponse(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"bad request sentinel", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"generic not found", apperrors.NewNotFoundError("gone"), http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"course code conflict", apperrors.ErrCourseCodeExists, http.StatusConflict},
		{"enrollment conflict", apperrors.ErrEnrollmentExists, http.StatusConflict},
		{"delete blocked by dependents", apperrors.NewPreconditionFailedError("in use"), http.StatusPreconditionFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := handleErrorResponse(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Success {
				t.Error("success = true on error response")
			}
			if body.Error == nil {
				t.Fatal("error detail missing from response")
			}
		})
	}
}

func TestHandleAPIErrorDependentsCode(t *testing.T) {
	_, body := handleErrorResponse(t, apperrors.NewPreconditionFailedError("course has enrollments"))
	if body.Error.Code != dto.ErrorCodeResourceHasDependents {
		t.Errorf("error code = %q, want %q", body.Error.Code, dto.ErrorCodeResourceHasDependents)
	}
	if body.Error.Message != "course has enrollments" {
		t.Errorf("error message = %q, want remediation message", body.Error.Message)
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := handleErrorResponse(t, errors.New("pq: connection refused"))
	if body.Error.Message != "Internal server error" {
		t.Errorf("error message = %q, internal cause leaked to caller", body.Error.Message)
	}
}
