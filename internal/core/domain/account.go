package domain

import (
	"fmt"
	"time"
)

// Role names form a closed set.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	RoleUser  = "user"
)

// ValidRole reports whether name is a member of the closed role set.
func ValidRole(name string) bool {
	return name == RoleAdmin || name == RoleAgent || name == RoleUser
}

// Role is a named privilege grouping assignable to accounts.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// NewRole builds a Role with the default description synthesized from its name.
func NewRole(name string) Role {
	return Role{
		Name:        name,
		Description: fmt.Sprintf("User with %s privileges", name),
	}
}

// Account models a user account. Roles holds the account's current role
// assignments as loaded from the store; capability predicates derive from it
// and the superuser flag on every call, never from cached state.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// HasRole reports whether the account currently holds the named role.
func (a *Account) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// IsAdmin reports admin capability: the admin role or the superuser flag.
func (a *Account) IsAdmin() bool {
	return a.IsSuperuser || a.HasRole(RoleAdmin)
}

// IsAgent reports agent capability: the agent role or the superuser flag.
func (a *Account) IsAgent() bool {
	return a.IsSuperuser || a.HasRole(RoleAgent)
}

// IsRegularUser reports whether the account carries no elevated capability.
func (a *Account) IsRegularUser() bool {
	return !(a.IsSuperuser || a.IsAdmin() || a.IsAgent())
}

// RoleNames returns the names of the account's assigned roles.
func (a *Account) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for _, r := range a.Roles {
		names = append(names, r.Name)
	}
	return names
}

// AddRole assigns the named role. Adding an already-held role is a no-op.
func (a *Account) AddRole(name string) {
	if a.HasRole(name) {
		return
	}
	a.Roles = append(a.Roles, NewRole(name))
}

// RemoveRole removes the named role. A superuser's admin role is immutable:
// the call is silently ignored in that case, no error is reported.
func (a *Account) RemoveRole(name string) {
	if a.IsSuperuser && name == RoleAdmin {
		return
	}
	kept := a.Roles[:0]
	for _, r := range a.Roles {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	a.Roles = kept
}

// SetRole clears all roles and assigns exactly the one given. For superusers
// any request other than admin is silently ignored, leaving existing roles
// untouched, so a superuser can never be downgraded through this path.
func (a *Account) SetRole(name string) {
	if a.IsSuperuser && name != RoleAdmin {
		return
	}
	a.Roles = nil
	a.AddRole(name)
}
