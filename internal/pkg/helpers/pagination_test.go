package helpers

import "testing"

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset uint64
	}{
		{"defaults for zero values", 0, 0, 1, 10, 0},
		{"negative page falls back", -3, 25, 1, 25, 0},
		{"limit above max falls back", 2, 500, 2, 10, 10},
		{"valid values pass through", 3, 20, 3, 20, 40},
		{"max limit is allowed", 1, 100, 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := ClampPagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("ClampPagination(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.page, tt.limit, page, limit, offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty result", 0, 10, 0},
		{"exact division", 100, 10, 10},
		{"remainder rounds up", 101, 10, 11},
		{"less than one page", 3, 10, 1},
		{"invalid limit uses default", 25, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestNormalizeOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"asc", "ASC"},
		{"ASC", "ASC"},
		{"desc", "DESC"},
		{"DESC", "DESC"},
		{"", "DESC"},
		{"sideways", "DESC"},
	}

	for _, tt := range tests {
		if got := NormalizeOrder(tt.in); got != tt.want {
			t.Errorf("NormalizeOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
