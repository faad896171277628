package authz

import (
	"testing"

	"github.com/estately/realty-api/internal/core/domain"
)

func account(id int64, superuser bool, roles ...string) *domain.Account {
	a := &domain.Account{ID: id, IsActive: true, IsSuperuser: superuser}
	for _, r := range roles {
		a.Roles = append(a.Roles, domain.NewRole(r))
	}
	return a
}

func TestCanAccess(t *testing.T) {
	regular := account(1, false, domain.RoleUser)
	agent := account(2, false, domain.RoleAgent)
	admin := account(3, false, domain.RoleAdmin)
	super := account(4, true)

	tests := []struct {
		name   string
		caller *domain.Account
		action Action
		want   bool
	}{
		{"nil caller list", nil, ActionList, false},
		{"nil caller create", nil, ActionCreate, false},
		{"regular list", regular, ActionList, true},
		{"regular retrieve", regular, ActionRetrieve, true},
		{"regular create", regular, ActionCreate, false},
		{"regular update", regular, ActionUpdate, false},
		{"regular delete", regular, ActionDelete, false},
		{"agent create", agent, ActionCreate, true},
		{"agent delete", agent, ActionDelete, true},
		{"admin without agent role create", admin, ActionCreate, false},
		{"admin retrieve", admin, ActionRetrieve, true},
		{"superuser create", super, ActionCreate, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.caller, tt.action); got != tt.want {
				t.Errorf("CanAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessListing(t *testing.T) {
	owner := account(10, false, domain.RoleAgent)
	otherAgent := account(11, false, domain.RoleAgent)
	regular := account(12, false, domain.RoleUser)
	super := account(13, true)

	listing := &domain.Listing{ID: 7, CreatedBy: owner.ID}

	tests := []struct {
		name   string
		caller *domain.Account
		action Action
		want   bool
	}{
		{"owner update", owner, ActionUpdate, true},
		{"owner delete", owner, ActionDelete, true},
		{"other agent update", otherAgent, ActionUpdate, false},
		{"other agent retrieve", otherAgent, ActionRetrieve, true},
		{"regular retrieve", regular, ActionRetrieve, true},
		{"regular update", regular, ActionUpdate, false},
		{"superuser update not owner", super, ActionUpdate, false},
		{"superuser retrieve", super, ActionRetrieve, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessListing(tt.caller, tt.action, listing); got != tt.want {
				t.Errorf("CanAccessListing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessListing_SuperuserOwner(t *testing.T) {
	super := account(13, true)
	own := &domain.Listing{ID: 8, CreatedBy: super.ID}

	if !CanAccessListing(super, ActionDelete, own) {
		t.Fatalf("superuser should be able to delete a listing they own")
	}
}
