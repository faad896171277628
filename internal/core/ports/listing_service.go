package ports

import (
	"context"

	"github.com/estately/realty-api/internal/core/domain"
)

// ListingInput carries the writable listing fields for create and update.
// The owning account is never taken from the request body.
type ListingInput struct {
	Title        string
	Description  string
	PropertyType string
	Status       string
	Price        float64
	Size         float64
	Address      string
	City         string
	State        string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
}

// ListingPatch carries the partial-update fields; nil means "leave as is".
type ListingPatch struct {
	Title        *string
	Description  *string
	PropertyType *string
	Status       *string
	Price        *float64
	Size         *float64
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Latitude     *float64
	Longitude    *float64
}

// ListListingsInput is the full query contract for the collection endpoint.
type ListListingsInput struct {
	Filter ListListingsFilter
	// MyListings restricts the collection to the caller's own rows, but
	// only when the caller has agent capability; otherwise it is silently
	// ignored.
	MyListings bool
}

// ListListingsResult is the paginated collection view.
type ListListingsResult struct {
	Items      []*domain.Listing
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListingService defines the listing use cases. Every operation takes the
// caller's account id; the caller is re-loaded from the store so capability
// checks always see current role assignments.
type ListingService interface {
	Create(ctx context.Context, callerID int64, input ListingInput) (*domain.Listing, error)
	Get(ctx context.Context, callerID int64, id int64) (*domain.Listing, error)
	List(ctx context.Context, callerID int64, input ListListingsInput) (*ListListingsResult, error)
	Update(ctx context.Context, callerID int64, id int64, input ListingInput) (*domain.Listing, error)
	Patch(ctx context.Context, callerID int64, id int64, patch ListingPatch) (*domain.Listing, error)
	Delete(ctx context.Context, callerID int64, id int64) error
}
