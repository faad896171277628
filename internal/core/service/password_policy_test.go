package service

import "testing"

func TestDefaultPasswordPolicy(t *testing.T) {
	policy := NewDefaultPasswordPolicy(8)

	tests := []struct {
		password string
		ok       bool
	}{
		{"hunter2abc", true},
		{"Abcdef12", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
		{"", false},
	}
	for _, tt := range tests {
		err := policy.Validate(tt.password)
		if tt.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.password, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tt.password)
		}
	}
}

func TestDefaultPasswordPolicy_ZeroMinLength(t *testing.T) {
	policy := NewDefaultPasswordPolicy(0)

	// Falls back to the default minimum of eight characters.
	if err := policy.Validate("abc1"); err == nil {
		t.Fatalf("expected error for short password")
	}
	if err := policy.Validate("abcdefg1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
