// Package authz implements the two-stage authorization policy for listing
// access. The request-level check needs nothing but the caller and is
// evaluated before any row is fetched; the object-level check runs once the
// target listing is loaded.
package authz

import "github.com/estately/realty-api/internal/core/domain"

// Action is the operation a caller attempts against the listing collection.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// safe reports whether the action is read-only.
func (a Action) safe() bool {
	return a == ActionList || a == ActionRetrieve
}

// CanAccess is the request-level predicate: any authenticated account may
// read, writes require agent capability. A nil account is unauthenticated
// and always denied.
func CanAccess(caller *domain.Account, action Action) bool {
	if caller == nil {
		return false
	}
	if action.safe() {
		return true
	}
	return caller.IsAgent()
}

// CanAccessListing is the object-level predicate: reads stay open to any
// authenticated account, writes require the caller to own the listing.
// Superusers pass via the capability union, not via a separate escape hatch.
func CanAccessListing(caller *domain.Account, action Action, listing *domain.Listing) bool {
	if !CanAccess(caller, action) {
		return false
	}
	if action.safe() {
		return true
	}
	return listing.CreatedBy == caller.ID
}
