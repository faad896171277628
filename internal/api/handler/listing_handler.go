package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/estately/realty-api/internal/api/metrics"
	"github.com/estately/realty-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations. All routes
// sit behind the Auth middleware; authorization beyond authentication is
// the service's concern.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

func listingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}
	return id, nil
}

// List handles GET /v1/listings.
//
// @Summary      List listings
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        min_price      query  number  false  "Minimum price (inclusive)"
// @Param        max_price      query  number  false  "Maximum price (inclusive)"
// @Param        min_size       query  number  false  "Minimum size (inclusive)"
// @Param        max_size       query  number  false  "Maximum size (inclusive)"
// @Param        property_type  query  string  false  "residential or commercial"
// @Param        status         query  string  false  "on_market or off_market"
// @Param        city           query  string  false  "Exact city match"
// @Param        city_contains  query  string  false  "Case-insensitive city substring"
// @Param        state          query  string  false  "Exact state match"
// @Param        zip_code       query  string  false  "Exact zip match"
// @Param        search         query  string  false  "Substring over title, description, address"
// @Param        ordering       query  string  false  "price, size or created_at, - prefix for descending"
// @Param        my_listings    query  bool    false  "Only own listings (agents only)"
// @Param        page           query  int     false  "Page number"
// @Param        limit          query  int     false  "Page size"
// @Success      200  {object}  listListingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var q listListingsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	result, err := h.service.List(c.Request().Context(), callerID, toListInput(q))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/listings/:id.
//
// @Summary      Retrieve a listing
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Listing id"
// @Success      200  {object}  listingResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	id, err := listingID(c)
	if err != nil {
		return err
	}

	listing, err := h.service.Get(c.Request().Context(), callerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Create handles POST /v1/listings.
//
// @Summary      Create a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), callerID, toListingInput(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(listing.PropertyType)).Inc()
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

// Update handles PUT /v1/listings/:id, a full replace of writable fields.
//
// @Summary      Replace a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Listing id"
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      200   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	id, err := listingID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.Update(c.Request().Context(), callerID, id, toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Patch handles PATCH /v1/listings/:id, a partial update.
//
// @Summary      Update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Listing id"
// @Param        body  body      patchListingRequest  true  "Fields to update"
// @Success      200   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/listings/{id} [patch]
func (h *ListingHandler) Patch(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	id, err := listingID(c)
	if err != nil {
		return err
	}

	var req patchListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.Patch(c.Request().Context(), callerID, id, toListingPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Delete handles DELETE /v1/listings/:id.
//
// @Summary      Delete a listing
// @Tags         listings
// @Security     BearerAuth
// @Param        id  path  int  true  "Listing id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	callerID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	id, err := listingID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), callerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
