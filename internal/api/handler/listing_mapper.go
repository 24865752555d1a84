package handler

import (
	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateListingInput(req createListingRequest, userID string) ports.CreateListingInput {
	periods := make([]ports.AvailabilityPeriodInput, len(req.AvailabilityPeriods))
	for i, p := range req.AvailabilityPeriods {
		periods[i] = ports.AvailabilityPeriodInput{
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		}
	}
	return ports.CreateListingInput{
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		Price:               req.Price,
		Category:            req.Category,
		ImageURL:            req.ImageURL,
		AvailabilityPeriods: periods,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toListingResponse(l *domain.ItemListing) listingResponse {
	periods := make([]availabilityPeriodResponse, len(l.AvailabilityPeriods))
	for i, p := range l.AvailabilityPeriods {
		periods[i] = availabilityPeriodResponse{
			StartDate: p.StartDate.UTC(),
			EndDate:   p.EndDate.UTC(),
		}
	}
	return listingResponse{
		ID:                  l.ID,
		UserID:              l.UserID,
		Title:               l.Title,
		Description:         l.Description,
		Price:               l.Price,
		Category:            l.Category,
		ImageURL:            l.ImageURL,
		Status:              string(l.Status),
		CreatedAt:           l.CreatedAt.UTC(),
		AvailabilityPeriods: periods,
	}
}

func toListingsResponse(listings []*domain.ItemListing) []listingResponse {
	out := make([]listingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return out
}

func toUploadImageResponse(r *ports.UploadImageResult) uploadImageResponse {
	resp := uploadImageResponse{ImageURL: r.ImageURL}
	if r.Suggestion != nil {
		resp.Suggestions = &suggestionResponse{
			Title:       r.Suggestion.Title,
			Description: r.Suggestion.Description,
			Category:    r.Suggestion.Category,
		}
	}
	return resp
}
