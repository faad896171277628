package handler

import (
	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

// --- Request → Service input ---

func toListingInput(req listingRequest) ports.ListingInput {
	return ports.ListingInput{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Status:       req.Status,
		Price:        req.Price,
		Size:         req.Size,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
}

func toListingPatch(req patchListingRequest) ports.ListingPatch {
	return ports.ListingPatch{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Status:       req.Status,
		Price:        req.Price,
		Size:         req.Size,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
}

func toListInput(q listListingsQuery) ports.ListListingsInput {
	return ports.ListListingsInput{
		Filter: ports.ListListingsFilter{
			MinPrice:     q.MinPrice,
			MaxPrice:     q.MaxPrice,
			MinSize:      q.MinSize,
			MaxSize:      q.MaxSize,
			PropertyType: q.PropertyType,
			Status:       q.Status,
			City:         q.City,
			CityContains: q.CityContains,
			State:        q.State,
			ZipCode:      q.ZipCode,
			Search:       q.Search,
			Ordering:     q.Ordering,
			Page:         q.Page,
			Limit:        q.Limit,
		},
		MyListings: q.MyListings,
	}
}

// --- Service result → HTTP response ---

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		PropertyType: string(l.PropertyType),
		Status:       string(l.Status),
		Price:        l.Price,
		Size:         l.Size,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt.UTC(),
		ModifiedAt:   l.ModifiedAt.UTC(),
	}
}

func toListResponse(result *ports.ListListingsResult) listListingsResponse {
	items := make([]listingResponse, 0, len(result.Items))
	for _, l := range result.Items {
		items = append(items, toListingResponse(l))
	}
	return listListingsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	}
}
