package app

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name      string
		totalRows int
		pageSize  int
		want      int
	}{
		// 空结果也算一页
		{"empty result has one page", 0, 10, 1},
		{"exact single page", 10, 10, 1},
		{"one over boundary", 11, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single row", 1, 10, 1},
		{"zero page size", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.totalRows, tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.totalRows, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestGetPageOffset(t *testing.T) {
	if got := GetPageOffset(1, 10); got != 0 {
		t.Errorf("GetPageOffset(1, 10) = %d, want 0", got)
	}
	if got := GetPageOffset(3, 10); got != 20 {
		t.Errorf("GetPageOffset(3, 10) = %d, want 20", got)
	}
	if got := GetPageOffset(0, 10); got != 0 {
		t.Errorf("GetPageOffset(0, 10) = %d, want 0", got)
	}
}
