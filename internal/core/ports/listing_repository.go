package ports

import (
	"context"

	"github.com/estately/realty-api/internal/core/domain"
)

// ListListingsFilter carries every recognized filter for the listing
// collection. Zero values mean "not supplied"; all supplied filters combine
// with logical AND.
type ListListingsFilter struct {
	MinPrice     *float64
	MaxPrice     *float64
	MinSize      *float64
	MaxSize      *float64
	PropertyType string
	Status       string
	City         string // exact match
	CityContains string // case-insensitive substring
	State        string
	ZipCode      string

	// Search matches case-insensitively against title, description, or
	// address (OR across the three fields).
	Search string

	// OwnerID, when non-zero, restricts results to listings created by that
	// account. The agent-capability gate is applied by the service, not here.
	OwnerID int64

	// Ordering is one of price, size, created_at, optionally prefixed with
	// "-" for descending. Empty means the default, -created_at.
	Ordering string

	Page  int
	Limit int
}

// ListingRepository defines persistence for listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, filter ListListingsFilter) ([]*domain.Listing, int64, error)
	Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, id int64) error
}
