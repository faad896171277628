package handler

import "time"

// --- Request types ---

// listingRequest carries the writable fields for create and full update.
// Any created_by value in the body is ignored: ownership is never taken
// from the request.
type listingRequest struct {
	Title        string   `json:"title"         validate:"required"`
	Description  string   `json:"description"`
	PropertyType string   `json:"property_type" validate:"required,oneof=residential commercial"`
	Status       string   `json:"status"        validate:"omitempty,oneof=on_market off_market"`
	Price        float64  `json:"price"         validate:"required,gt=0"`
	Size         float64  `json:"size"          validate:"required,gt=0"`
	Address      string   `json:"address"       validate:"required"`
	City         string   `json:"city"          validate:"required"`
	State        string   `json:"state"         validate:"required"`
	ZipCode      string   `json:"zip_code"      validate:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// patchListingRequest is the partial-update body; absent fields stay
// untouched.
type patchListingRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	PropertyType *string  `json:"property_type" validate:"omitempty,oneof=residential commercial"`
	Status       *string  `json:"status"        validate:"omitempty,oneof=on_market off_market"`
	Price        *float64 `json:"price"         validate:"omitempty,gt=0"`
	Size         *float64 `json:"size"          validate:"omitempty,gt=0"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zip_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// listListingsQuery binds the recognized query parameters. Unrecognized
// parameters are simply not bound, never rejected.
type listListingsQuery struct {
	MinPrice     *float64 `query:"min_price"`
	MaxPrice     *float64 `query:"max_price"`
	MinSize      *float64 `query:"min_size"`
	MaxSize      *float64 `query:"max_size"`
	PropertyType string   `query:"property_type"`
	Status       string   `query:"status"`
	City         string   `query:"city"`
	CityContains string   `query:"city_contains"`
	State        string   `query:"state"`
	ZipCode      string   `query:"zip_code"`
	Search       string   `query:"search"`
	Ordering     string   `query:"ordering"`
	MyListings   bool     `query:"my_listings"`
	Page         int      `query:"page"`
	Limit        int      `query:"limit"`
}

// --- Response types ---

type listingResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Size         float64   `json:"size"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedBy    int64     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listListingsResponse struct {
	Data       []listingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
