package repositories

import (
	"database/sql"
	"testing"
)

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName sql.NullString
		firstName   sql.NullString
		lastName    sql.NullString
		want        string
		wantNil     bool
	}{
		{"display name wins", nullStr("Dr. Evelyn Turner"), nullStr("Evelyn"), nullStr("Turner"), "Dr. Evelyn Turner", false},
		{"falls back to first last", sql.NullString{}, nullStr("Evelyn"), nullStr("Turner"), "Evelyn Turner", false},
		{"empty display name falls back", nullStr(""), nullStr("Evelyn"), nullStr("Turner"), "Evelyn Turner", false},
		{"missing join yields nil", sql.NullString{}, sql.NullString{}, sql.NullString{}, "", true},
		{"partial name yields nil", sql.NullString{}, nullStr("Evelyn"), sql.NullString{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDisplayName(tt.displayName, tt.firstName, tt.lastName)
			if tt.wantNil {
				if got != nil {
					t.Errorf("resolveDisplayName() = %q, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("resolveDisplayName() = nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("resolveDisplayName() = %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestIlikeAnyBuildsOrClause(t *testing.T) {
	or := ilikeAny("turing", "first_name", "last_name", "email")
	if len(or) != 3 {
		t.Fatalf("ilikeAny() produced %d predicates, want 3", len(or))
	}

	sqlStr, args, err := or.ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	if sqlStr != "(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)" {
		t.Errorf("ToSql() = %q", sqlStr)
	}
	for _, arg := range args {
		if arg != "%turing%" {
			t.Errorf("arg = %v, want %%turing%%", arg)
		}
	}
}

func TestSortColumnFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		mapper  func(string) string
		field   string
		want    string
	}{
		{"course known field", mapCourseSortColumn, "code", "c.code"},
		{"course unknown field", mapCourseSortColumn, "'; DROP TABLE courses;--", "c.created_at"},
		{"course empty field", mapCourseSortColumn, "", "c.created_at"},
		{"student camelCase", mapStudentSortColumn, "firstName", "first_name"},
		{"student snake_case", mapStudentSortColumn, "first_name", "first_name"},
		{"student unknown field", mapStudentSortColumn, "password_hash", "created_at"},
		{"submission known field", mapSubmissionSortColumn, "submittedAt", "sub.submitted_at"},
		{"submission unknown field", mapSubmissionSortColumn, "bogus", "sub.created_at"},
		{"user unknown field", mapUserSortColumn, "bogus", "created_at"},
		{"grade known field", mapGradeSortColumn, "marks", "g.marks"},
		{"attendance known field", mapAttendanceSortColumn, "date", "a.date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapper(tt.field); got != tt.want {
				t.Errorf("mapper(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}
