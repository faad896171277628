package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

// ListingRepository provides PostgreSQL backed persistence for listings.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

const listingColumns = `id, title, description, property_type, status, price, size,
	address, city, state, zip_code, latitude, longitude, created_by, created_at, modified_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.PropertyType, &l.Status, &l.Price, &l.Size,
		&l.Address, &l.City, &l.State, &l.ZipCode, &l.Latitude, &l.Longitude,
		&l.CreatedBy, &l.CreatedAt, &l.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx, `
		INSERT INTO listings (title, description, property_type, status, price, size,
			address, city, state, zip_code, latitude, longitude, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+listingColumns,
		listing.Title, listing.Description, listing.PropertyType, listing.Status,
		listing.Price, listing.Size, listing.Address, listing.City, listing.State,
		listing.ZipCode, listing.Latitude, listing.Longitude, listing.CreatedBy))
}

func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
}

// List applies the filter contract, returning the page of matching listings
// and the total match count.
func (r *ListingRepository) List(ctx context.Context, filter ports.ListListingsFilter) ([]*domain.Listing, int64, error) {
	where, args := buildListingWhere(filter)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM listings`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}

	query := `SELECT ` + listingColumns + ` FROM listings` + where + buildListingOrder(filter.Ordering)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		offset := (filter.Page - 1) * filter.Limit
		if offset > 0 {
			args = append(args, offset)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	updated, err := scanListing(r.pool.QueryRow(ctx, `
		UPDATE listings
		SET title = $2, description = $3, property_type = $4, status = $5, price = $6,
			size = $7, address = $8, city = $9, state = $10, zip_code = $11,
			latitude = $12, longitude = $13, modified_at = now()
		WHERE id = $1
		RETURNING `+listingColumns,
		listing.ID, listing.Title, listing.Description, listing.PropertyType, listing.Status,
		listing.Price, listing.Size, listing.Address, listing.City, listing.State,
		listing.ZipCode, listing.Latitude, listing.Longitude))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}
