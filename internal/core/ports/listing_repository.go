package ports

import (
	"context"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// ListListingsFilter carries the pagination parameters for listing queries.
type ListListingsFilter struct {
	Skip  int64 // number of documents to skip (offset)
	Limit int64 // max documents to return
}

// ListingRepository defines persistence operations for item listings.
// Availability periods are embedded in the listing document, so Create is a
// single atomic write of the whole aggregate.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.ItemListing) (*domain.ItemListing, error)
	// List returns a page of listings in creation order.
	List(ctx context.Context, filter ListListingsFilter) ([]*domain.ItemListing, error)
}
