package helpers

import (
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+91 98765 43210", "919876543210"},
		{"(91) 98765-43210", "919876543210"},
		{"919876543210", "919876543210"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"919876543210", "+919876543210", "+91 98765 43210", "1234567890"}
	for _, n := range valid {
		if !IsValidPhone(n) {
			t.Errorf("expected %q to be valid", n)
		}
	}

	invalid := []string{
		"",
		"12345",                // too short
		"1234567890123456",     // too long
		"0919876543210",        // leading zero
		"98765abc43",           // non-digits
		"not a number at allx", // words
	}
	for _, n := range invalid {
		if IsValidPhone(n) {
			t.Errorf("expected %q to be invalid", n)
		}
	}
}

func TestEnhancedClaimsRoles(t *testing.T) {
	admin := &EnhancedClaims{Role: "admin", UserID: "u1"}
	if !admin.IsAdmin() || !admin.HasRole("admin") {
		t.Error("admin role not recognized")
	}

	user := &EnhancedClaims{Role: "user", UserID: "u2"}
	if user.IsAdmin() {
		t.Error("plain user must not be admin")
	}
	if !user.IsOwner("u2") || user.IsOwner("u1") {
		t.Error("ownership check mismatch")
	}

	anon := &EnhancedClaims{}
	if anon.GetSafeRole() != "user" {
		t.Errorf("expected default role user, got %q", anon.GetSafeRole())
	}
}
