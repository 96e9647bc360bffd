package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"001_init.sql", "001"},
		{"002_add_indexes.sql", "002"},
		{"010_rename_column.sql", "010"},
		{"nounderscore.sql", "nounderscore.sql"},
	}

	for _, tt := range tests {
		if got := migrationVersion(tt.filename); got != tt.want {
			t.Errorf("migrationVersion(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

// Deletes that would orphan dependent rows must surface as foreign key
// violations, so no FK in the schema may silently null or cascade.
func TestInitialSchemaRestrictsDeletes(t *testing.T) {
	path := filepath.Join("..", "..", "..", "migrations", "001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read schema file: %v", err)
	}

	schema := strings.ToUpper(string(content))
	if strings.Contains(schema, "ON DELETE SET NULL") {
		t.Error("schema contains ON DELETE SET NULL; dependent rows must block deletes")
	}
	if strings.Contains(schema, "ON DELETE CASCADE") {
		t.Error("schema contains ON DELETE CASCADE; dependent rows must block deletes")
	}
	if !strings.Contains(schema, "ON DELETE RESTRICT") {
		t.Error("schema has no ON DELETE RESTRICT foreign keys")
	}
}
