package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type availabilityPeriodRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
}

type createListingRequest struct {
	Title               string                      `json:"title"       validate:"required"`
	Description         string                      `json:"description"`
	Price               float64                     `json:"price"       validate:"required,gt=0"`
	Category            string                      `json:"category"    validate:"required"`
	ImageURL            string                      `json:"image_url"`
	AvailabilityPeriods []availabilityPeriodRequest `json:"availability_periods" validate:"dive"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type availabilityPeriodResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type listingResponse struct {
	ID                  string                       `json:"id"`
	UserID              string                       `json:"user_id"`
	Title               string                       `json:"title"`
	Description         string                       `json:"description,omitempty"`
	Price               float64                      `json:"price"`
	Category            string                       `json:"category"`
	ImageURL            string                       `json:"image_url,omitempty"`
	Status              string                       `json:"status"`
	CreatedAt           time.Time                    `json:"created_at"`
	AvailabilityPeriods []availabilityPeriodResponse `json:"availability_periods"`
}

type suggestionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// uploadImageResponse carries the stored file's public URL and the advisory
// suggestion. Suggestions is null when enrichment produced nothing.
type uploadImageResponse struct {
	ImageURL    string              `json:"image_url"`
	Suggestions *suggestionResponse `json:"suggestions"`
}
