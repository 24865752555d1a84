package ports

import (
	"context"
	"io"
	"time"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// AvailabilityPeriodInput is one rental window in a create request.
type AvailabilityPeriodInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// CreateListingInput carries all data needed to create a new listing.
type CreateListingInput struct {
	UserID              string
	Title               string
	Description         string
	Price               float64
	Category            string
	ImageURL            string
	AvailabilityPeriods []AvailabilityPeriodInput
}

// ListListingsInput carries pagination for the public list endpoint.
type ListListingsInput struct {
	Skip  int64
	Limit int64
}

// UploadImageInput carries an uploaded file stream and its declared metadata.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// UploadImageResult is returned after a successful upload. Suggestion is nil
// when the advisory call produced nothing usable.
type UploadImageResult struct {
	ImageURL   string
	Suggestion *domain.Suggestion
}

// ListingService defines use-case operations for item listings.
type ListingService interface {
	CreateListing(ctx context.Context, input CreateListingInput) (*domain.ItemListing, error)
	ListListings(ctx context.Context, input ListListingsInput) ([]*domain.ItemListing, error)
	UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageResult, error)
}
