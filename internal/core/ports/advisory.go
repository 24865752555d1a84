package ports

import (
	"context"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// AdvisoryClient wraps the external vision model. Analyze returns (nil, nil)
// when the model replies with nothing usable; transport and API failures come
// back as errors. Callers treat both the same way — the suggestion is simply
// absent — so enrichment failure never fails a request.
type AdvisoryClient interface {
	Analyze(ctx context.Context, imagePath string) (*domain.Suggestion, error)
}
