package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(uniqueErr) {
		t.Error("IsUniqueViolation() = false for code 23505")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)) {
		t.Error("IsUniqueViolation() = false for wrapped unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("IsUniqueViolation() = true for foreign key code")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("IsUniqueViolation() = true for non-pg error")
	}
	if IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation() = true for nil")
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "courses_code_key"}

	if !IsUniqueConstraintError(err, "courses_code_key") {
		t.Error("IsUniqueConstraintError() = false for matching constraint")
	}
	if IsUniqueConstraintError(err, "users_email_key") {
		t.Error("IsUniqueConstraintError() = true for different constraint")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_course_id_fkey"}

	if !IsForeignKeyViolation(fkErr) {
		t.Error("IsForeignKeyViolation() = false for code 23503")
	}
	if !IsForeignKeyViolation(fmt.Errorf("delete failed: %w", fkErr)) {
		t.Error("IsForeignKeyViolation() = false for wrapped violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("IsForeignKeyViolation() = true for unique code")
	}
}
