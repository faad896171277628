package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/estately/realty-api/internal/core/authz"
	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

// ListingService implements listing CRUD gated by the two-stage
// authorization policy. The caller is re-loaded on every call so capability
// checks always reflect current role assignments.
type ListingService struct {
	listings ports.ListingRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewListingService(listings ports.ListingRepository, accounts ports.AccountRepository, logger zerolog.Logger) *ListingService {
	return &ListingService{listings: listings, accounts: accounts, logger: logger}
}

func (s *ListingService) caller(ctx context.Context, callerID int64) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, callerID)
}

// Create persists a new listing owned by the caller. Agent capability is
// required; the owner is always the caller, whatever the request body said.
func (s *ListingService) Create(ctx context.Context, callerID int64, input ports.ListingInput) (*domain.Listing, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccess(caller, authz.ActionCreate) {
		return nil, domain.ErrForbidden
	}

	listing := fromInput(input)
	listing.CreatedBy = caller.ID
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	created, err := s.listings.Create(ctx, listing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("listing_id", created.ID).
		Int64("account_id", caller.ID).
		Str("property_type", string(created.PropertyType)).
		Msg("listing created")
	return created, nil
}

// Get returns a single listing. Listings are globally readable to any
// authenticated account, so absence is unambiguous.
func (s *ListingService) Get(ctx context.Context, callerID int64, id int64) (*domain.Listing, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccess(caller, authz.ActionRetrieve) {
		return nil, domain.ErrForbidden
	}
	return s.listings.FindByID(ctx, id)
}

// List returns the filtered, searched, ordered collection. The my_listings
// scope only takes effect for callers with agent capability; for anyone
// else the parameter is silently ignored.
func (s *ListingService) List(ctx context.Context, callerID int64, input ports.ListListingsInput) (*ports.ListListingsResult, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccess(caller, authz.ActionList) {
		return nil, domain.ErrForbidden
	}

	filter := input.Filter
	filter.OwnerID = 0
	if input.MyListings && caller.IsAgent() {
		filter.OwnerID = caller.ID
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.listings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListListingsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update replaces all writable fields of a listing the caller owns.
func (s *ListingService) Update(ctx context.Context, callerID int64, id int64, input ports.ListingInput) (*domain.Listing, error) {
	caller, listing, err := s.loadForWrite(ctx, callerID, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}

	updated := fromInput(input)
	updated.ID = listing.ID
	updated.CreatedBy = listing.CreatedBy
	updated.CreatedAt = listing.CreatedAt
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	result, err := s.listings.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("listing_id", id).Int64("account_id", caller.ID).Msg("listing updated")
	return result, nil
}

// Patch applies only the supplied fields to a listing the caller owns.
func (s *ListingService) Patch(ctx context.Context, callerID int64, id int64, patch ports.ListingPatch) (*domain.Listing, error) {
	caller, listing, err := s.loadForWrite(ctx, callerID, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}

	applyPatch(listing, patch)
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	result, err := s.listings.Update(ctx, listing)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("listing_id", id).Int64("account_id", caller.ID).Msg("listing updated")
	return result, nil
}

// Delete removes a listing the caller owns. There is no soft-delete.
func (s *ListingService) Delete(ctx context.Context, callerID int64, id int64) error {
	caller, _, err := s.loadForWrite(ctx, callerID, id, authz.ActionDelete)
	if err != nil {
		return err
	}
	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("listing_id", id).Int64("account_id", caller.ID).Msg("listing deleted")
	return nil
}

// loadForWrite runs the request-level check before fetching the target row,
// then the object-level check once it is loaded.
func (s *ListingService) loadForWrite(ctx context.Context, callerID, id int64, action authz.Action) (*domain.Account, *domain.Listing, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}
	if !authz.CanAccess(caller, action) {
		return nil, nil, domain.ErrForbidden
	}

	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !authz.CanAccessListing(caller, action, listing) {
		return nil, nil, domain.ErrForbidden
	}
	return caller, listing, nil
}

func fromInput(input ports.ListingInput) *domain.Listing {
	return &domain.Listing{
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: domain.PropertyType(input.PropertyType),
		Status:       domain.ListingStatus(input.Status),
		Price:        input.Price,
		Size:         input.Size,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
}

func applyPatch(l *domain.Listing, p ports.ListingPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.PropertyType != nil {
		l.PropertyType = domain.PropertyType(*p.PropertyType)
	}
	if p.Status != nil {
		l.Status = domain.ListingStatus(*p.Status)
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Size != nil {
		l.Size = *p.Size
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.State != nil {
		l.State = *p.State
	}
	if p.ZipCode != nil {
		l.ZipCode = *p.ZipCode
	}
	if p.Latitude != nil {
		l.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = p.Longitude
	}
}
