package domain

import (
	"reflect"
	"testing"
)

func accountWithRoles(names ...string) *Account {
	a := &Account{ID: 1, Username: "test", IsActive: true}
	for _, n := range names {
		a.Roles = append(a.Roles, NewRole(n))
	}
	return a
}

func TestAccount_Capabilities(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		admin   bool
		agent   bool
		regular bool
	}{
		{"no roles", accountWithRoles(), false, false, true},
		{"user role only", accountWithRoles(RoleUser), false, false, true},
		{"agent role", accountWithRoles(RoleAgent), false, true, false},
		{"admin role", accountWithRoles(RoleAdmin), true, false, false},
		{"admin and agent", accountWithRoles(RoleAdmin, RoleAgent), true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.account.IsAdmin(); got != tt.admin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.admin)
			}
			if got := tt.account.IsAgent(); got != tt.agent {
				t.Errorf("IsAgent() = %v, want %v", got, tt.agent)
			}
			if got := tt.account.IsRegularUser(); got != tt.regular {
				t.Errorf("IsRegularUser() = %v, want %v", got, tt.regular)
			}
		})
	}
}

func TestAccount_SuperuserHasAllCapabilities(t *testing.T) {
	a := accountWithRoles()
	a.IsSuperuser = true

	if !a.IsAdmin() {
		t.Errorf("superuser should have admin capability without the role")
	}
	if !a.IsAgent() {
		t.Errorf("superuser should have agent capability without the role")
	}
	if a.IsRegularUser() {
		t.Errorf("superuser should not be a regular user")
	}
}

func TestAccount_AddRole_Idempotent(t *testing.T) {
	a := accountWithRoles(RoleAgent)
	a.AddRole(RoleAgent)
	a.AddRole(RoleAgent)

	if len(a.Roles) != 1 {
		t.Fatalf("expected 1 role, got %d", len(a.Roles))
	}
}

func TestAccount_RemoveRole(t *testing.T) {
	a := accountWithRoles(RoleAgent, RoleUser)
	a.RemoveRole(RoleAgent)

	if a.HasRole(RoleAgent) {
		t.Fatalf("agent role should have been removed")
	}
	if !a.HasRole(RoleUser) {
		t.Fatalf("user role should remain")
	}

	// Removing a role the account does not hold is a no-op.
	a.RemoveRole(RoleAdmin)
	if !reflect.DeepEqual(a.RoleNames(), []string{RoleUser}) {
		t.Fatalf("unexpected roles: %v", a.RoleNames())
	}
}

func TestAccount_RemoveRole_SuperuserKeepsAdmin(t *testing.T) {
	a := accountWithRoles(RoleAdmin)
	a.IsSuperuser = true

	a.RemoveRole(RoleAdmin)
	if !a.HasRole(RoleAdmin) {
		t.Fatalf("superuser admin role must not be removable")
	}
}

func TestAccount_SetRole(t *testing.T) {
	a := accountWithRoles(RoleAdmin, RoleAgent)
	a.SetRole(RoleUser)

	if !reflect.DeepEqual(a.RoleNames(), []string{RoleUser}) {
		t.Fatalf("expected exactly the user role, got %v", a.RoleNames())
	}
}

func TestAccount_SetRole_SuperuserCannotBeDowngraded(t *testing.T) {
	a := accountWithRoles(RoleAdmin)
	a.IsSuperuser = true

	a.SetRole(RoleUser)
	if !reflect.DeepEqual(a.RoleNames(), []string{RoleAdmin}) {
		t.Fatalf("superuser roles must be untouched, got %v", a.RoleNames())
	}

	a.SetRole(RoleAdmin)
	if !reflect.DeepEqual(a.RoleNames(), []string{RoleAdmin}) {
		t.Fatalf("setting admin on a superuser should keep exactly admin, got %v", a.RoleNames())
	}
}

func TestValidRole(t *testing.T) {
	for _, name := range []string{RoleAdmin, RoleAgent, RoleUser} {
		if !ValidRole(name) {
			t.Errorf("ValidRole(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "superuser", "Admin", "manager"} {
		if ValidRole(name) {
			t.Errorf("ValidRole(%q) = true, want false", name)
		}
	}
}

func TestNewRole_Description(t *testing.T) {
	r := NewRole(RoleAgent)
	if r.Description != "User with agent privileges" {
		t.Fatalf("unexpected description: %q", r.Description)
	}
}
