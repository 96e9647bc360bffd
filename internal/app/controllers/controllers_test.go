package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
)

func bindBody(t *testing.T, body string, target interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return w, bindJSON(c, target)
}

func TestBindJSONFieldErrors(t *testing.T) {
	var req dto.SignupRequest
	w, ok := bindBody(t, `{"email": "not-an-email", "password": "short", "role": "student"}`, &req)

	if ok {
		t.Fatal("bindJSON() accepted an invalid body")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body.Error == nil || body.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("error = %v, want code %s", body.Error, dto.ErrorCodeValidationFailed)
	}

	details, ok := body.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %T, want field error object", body.Error.Details)
	}
	fieldErrs, ok := details["errors"].([]interface{})
	if !ok || len(fieldErrs) != 2 {
		t.Fatalf("field errors = %v, want entries for Email and Password", details["errors"])
	}

	fields := make(map[string]bool)
	for _, raw := range fieldErrs {
		entry := raw.(map[string]interface{})
		fields[entry["field"].(string)] = true
		if entry["code"] != string(dto.ErrorCodeValidationFailed) {
			t.Errorf("field error code = %v, want %s", entry["code"], dto.ErrorCodeValidationFailed)
		}
	}
	if !fields["Email"] || !fields["Password"] {
		t.Errorf("field errors cover %v, want Email and Password", fields)
	}
}

func TestBindJSONMalformedBody(t *testing.T) {
	var req dto.SignupRequest
	w, ok := bindBody(t, `{"email": `, &req)

	if ok {
		t.Fatal("bindJSON() accepted malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if _, isString := body.Error.Details.(string); !isString {
		t.Errorf("details = %T, want plain parse error string", body.Error.Details)
	}
}

func TestBindJSONValidBody(t *testing.T) {
	var req dto.SignupRequest
	_, ok := bindBody(t, `{"email": "jane@campushub.app", "password": "long-enough-1", "role": "student"}`, &req)

	if !ok {
		t.Fatal("bindJSON() rejected a valid body")
	}
	if req.Email != "jane@campushub.app" {
		t.Errorf("bound email = %q", req.Email)
	}
}

func TestValidationMessages(t *testing.T) {
	var req dto.SignupRequest
	w, _ := bindBody(t, `{}`, &req)

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	details := body.Error.Details.(map[string]interface{})
	for _, raw := range details["errors"].([]interface{}) {
		entry := raw.(map[string]interface{})
		if entry["message"] != "This field is required" {
			t.Errorf("message for %v = %v, want required-field message", entry["field"], entry["message"])
		}
	}
}
