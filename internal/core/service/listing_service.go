package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentit/campus-rentals-api/internal/api/metrics"
	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

const defaultPageLimit = 100

// acceptedImageTypes lists the MIME types an upload may declare.
var acceptedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// ListingService implements listing creation, browsing, and the image-upload
// orchestration. All collaborators are injected so tests can substitute them.
type ListingService struct {
	repo    ports.ListingRepository
	store   ports.FileStore
	advisor ports.AdvisoryClient
	logger  zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, store ports.FileStore, advisor ports.AdvisoryClient, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, store: store, advisor: advisor, logger: logger}
}

// CreateListing persists a new listing owned by the caller. The availability
// periods are embedded in the listing document and written with it in one
// insert, so a store rejection leaves nothing behind to compensate.
func (s *ListingService) CreateListing(ctx context.Context, input ports.CreateListingInput) (*domain.ItemListing, error) {
	periods := make([]domain.AvailabilityPeriod, len(input.AvailabilityPeriods))
	for i, p := range input.AvailabilityPeriods {
		periods[i] = domain.AvailabilityPeriod{StartDate: p.StartDate, EndDate: p.EndDate}
	}

	listing := &domain.ItemListing{
		UserID:              input.UserID,
		Title:               input.Title,
		Description:         input.Description,
		Price:               input.Price,
		Category:            input.Category,
		ImageURL:            input.ImageURL,
		Status:              domain.StatusAvailable,
		CreatedAt:           time.Now().UTC(),
		AvailabilityPeriods: periods,
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create listing")
		return nil, err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("listing_id", created.ID).Str("user_id", created.UserID).Msg("listing created")

	return created, nil
}

// ListListings returns a page of listings in creation order. Skip defaults to
// 0 and limit to defaultPageLimit; there is intentionally no upper cap on
// limit.
func (s *ListingService) ListListings(ctx context.Context, input ports.ListListingsInput) ([]*domain.ItemListing, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	return s.repo.List(ctx, ports.ListListingsFilter{Skip: skip, Limit: limit})
}

// UploadImage validates and stores an uploaded image, then enriches it with a
// best-effort advisory suggestion. Advisory failure never fails the upload:
// the result simply carries a nil suggestion.
func (s *ListingService) UploadImage(ctx context.Context, input ports.UploadImageInput) (*ports.UploadImageResult, error) {
	if _, ok := acceptedImageTypes[input.ContentType]; !ok {
		metrics.ImageUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUnsupportedImageType
	}

	stored, err := s.store.Save(ctx, filepath.Ext(input.Filename), input.Body)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	metrics.ImageUploadsTotal.WithLabelValues("stored").Inc()

	return &ports.UploadImageResult{
		ImageURL:   stored.URL,
		Suggestion: s.advise(ctx, stored.Path),
	}, nil
}

// advise calls the vision model and normalizes every failure to nil.
func (s *ListingService) advise(ctx context.Context, imagePath string) *domain.Suggestion {
	start := time.Now()
	suggestion, err := s.advisor.Analyze(ctx, imagePath)
	metrics.AdvisoryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AdvisoryRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("path", imagePath).Msg("advisory call failed")
		return nil
	}
	if suggestion == nil {
		metrics.AdvisoryRequestsTotal.WithLabelValues("empty").Inc()
		s.logger.Debug().Str("path", imagePath).Msg("advisory returned no suggestion")
		return nil
	}

	metrics.AdvisoryRequestsTotal.WithLabelValues("ok").Inc()
	return suggestion
}
