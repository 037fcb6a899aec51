package models

import (
	"testing"
	"time"
)

func TestValidTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"light", ThemeLight, true},
		{"dark", ThemeDark, true},
		{"alias", "default", true},
		{"mixed case", " Dark ", true},
		{"unknown", "galaxy", false},
		{"empty", "", false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidTheme(tt.value); got != tt.want {
				t.Fatalf("ValidTheme(%q) = %t, want %t", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	t.Parallel()

	if got := NormalizeTheme("DARK"); got != ThemeDark {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, ThemeDark)
	}

	if got := NormalizeTheme("  invalid  "); got != DefaultTheme {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, DefaultTheme)
	}
}

func TestEmailVerified(t *testing.T) {
	t.Parallel()

	u := &User{}
	if u.EmailVerified() {
		t.Fatal("expected new user to be unverified")
	}
	now := time.Now()
	u.EmailVerifiedAt = &now
	if !u.EmailVerified() {
		t.Fatal("expected user to be verified once timestamp is set")
	}
}
