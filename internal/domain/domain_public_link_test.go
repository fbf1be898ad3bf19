package domain

import (
	"testing"
	"time"
)

func TestPublicLinkExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt string
		want      bool
	}{
		{"empty never expires", "", false},
		{"future not expired", now.Add(time.Hour).Format(time.RFC3339), false},
		{"past expired", now.Add(-time.Hour).Format(time.RFC3339), true},
		{"exact boundary not expired", now.Format(time.RFC3339), false},
		// 解析失败放行，确认过期拒绝
		{"unparseable treated as never", "not-a-time", false},
		{"wrong format treated as never", "2024-06-01 11:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := &PublicLink{ExpiresAt: tt.expiresAt}
			if got := link.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublicLinkResolvable(t *testing.T) {
	now := time.Now()

	active := &PublicLink{ExpiresAt: ""}
	if !active.Resolvable(now) {
		t.Error("active link should be resolvable")
	}

	revoked := &PublicLink{Revoked: true}
	if revoked.Resolvable(now) {
		t.Error("revoked link should not be resolvable")
	}

	expired := &PublicLink{ExpiresAt: now.Add(-time.Minute).Format(time.RFC3339)}
	if expired.Resolvable(now) {
		t.Error("expired link should not be resolvable")
	}
}

func TestParseTagTerms(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"empty", "", nil},
		{"single", "war", []string{"war"}},
		{"multiple with spaces", " war , trade ", []string{"war", "trade"}},
		{"drops empties", "war,,trade,", []string{"war", "trade"}},
		{"only separators", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTagTerms(tt.expr)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTagTerms(%q) = %v, want %v", tt.expr, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTagTerms(%q)[%d] = %q, want %q", tt.expr, i, got[i], tt.want[i])
				}
			}
		})
	}
}
