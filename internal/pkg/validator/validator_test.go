package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-01"); !ok {
		t.Error("IsValidDate(\"2025-06-01\") = false, want true")
	}
	for _, s := range []string{"2025-13-01", "01/06/2025", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMatricule(t *testing.T) {
	valid := []string{"EMP-001", "KL-2024-17", "A1"}
	invalid := []string{"", "a", "emp 001", "emp-001", "EMP_001"}
	for _, m := range valid {
		if !IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = true, want false", m)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "status", Message: "invalid status"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["status"] != "invalid status" {
		t.Errorf("ToMap()[\"status\"] = %q", m["status"])
	}
}
