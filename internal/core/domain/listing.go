package domain

import (
	"errors"
	"time"
)

// ListingStatus represents the lifecycle state of an item listing.
type ListingStatus string

const (
	StatusAvailable   ListingStatus = "available"
	StatusRented      ListingStatus = "rented"
	StatusUnavailable ListingStatus = "unavailable"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrUnsupportedImageType = errors.New("only JPEG and PNG images are allowed")
var ErrImageTooLarge = errors.New("file size exceeds 10MB limit")

// AvailabilityPeriod is a window during which a listed item can be rented.
// It has no lifecycle of its own: periods are embedded in their listing and
// written with it in a single document insert.
type AvailabilityPeriod struct {
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
}

// ItemListing is the core aggregate root.
type ItemListing struct {
	ID                  string               `json:"id" bson:"_id,omitempty"`
	UserID              string               `json:"user_id" bson:"user_id"`
	Title               string               `json:"title" bson:"title"`
	Description         string               `json:"description,omitempty" bson:"description,omitempty"`
	Price               float64              `json:"price" bson:"price"`
	Category            string               `json:"category" bson:"category"`
	ImageURL            string               `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Status              ListingStatus        `json:"status" bson:"status"`
	CreatedAt           time.Time            `json:"created_at" bson:"created_at"`
	AvailabilityPeriods []AvailabilityPeriod `json:"availability_periods" bson:"availability_periods"`
}
