package domain

import "time"

// PropertyType classifies a listing.
type PropertyType string

const (
	TypeResidential PropertyType = "residential"
	TypeCommercial  PropertyType = "commercial"
)

// ListingStatus is the market state of a listing.
type ListingStatus string

const (
	StatusOnMarket  ListingStatus = "on_market"
	StatusOffMarket ListingStatus = "off_market"
)

// Listing is a property record owned by exactly one account for its entire
// lifetime. Price and size carry two fractional digits, latitude/longitude
// six; they map to NUMERIC columns in the store.
type Listing struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	PropertyType PropertyType  `json:"property_type"`
	Status       ListingStatus `json:"status"`
	Price        float64       `json:"price"`
	Size         float64       `json:"size"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	State        string        `json:"state"`
	ZipCode      string        `json:"zip_code"`
	Latitude     *float64      `json:"latitude"`
	Longitude    *float64      `json:"longitude"`
	CreatedBy    int64         `json:"created_by"`
	CreatedAt    time.Time     `json:"created_at"`
	ModifiedAt   time.Time     `json:"modified_at"`
}

// Validate checks the listing's domain invariants and reports every violated
// field at once. A zero Status is defaulted to on_market before checking.
func (l *Listing) Validate() error {
	if l.Status == "" {
		l.Status = StatusOnMarket
	}

	ve := NewValidationError()
	if l.Title == "" {
		ve.Add("title", "title is required")
	}
	if l.Price <= 0 {
		ve.Add("price", "price must be greater than zero")
	}
	if l.Size <= 0 {
		ve.Add("size", "size must be greater than zero")
	}
	switch l.PropertyType {
	case TypeResidential, TypeCommercial:
	default:
		ve.Add("property_type", "property_type must be residential or commercial")
	}
	switch l.Status {
	case StatusOnMarket, StatusOffMarket:
	default:
		ve.Add("status", "status must be on_market or off_market")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
