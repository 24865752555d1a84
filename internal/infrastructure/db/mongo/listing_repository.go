package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

const listingsCollection = "item_listings"

type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

type mongoAvailabilityPeriod struct {
	StartDate time.Time `bson:"start_date"`
	EndDate   time.Time `bson:"end_date"`
}

type mongoListing struct {
	ID                  primitive.ObjectID        `bson:"_id,omitempty"`
	UserID              string                    `bson:"user_id"`
	Title               string                    `bson:"title"`
	Description         string                    `bson:"description,omitempty"`
	Price               float64                   `bson:"price"`
	Category            string                    `bson:"category"`
	ImageURL            string                    `bson:"image_url,omitempty"`
	Status              string                    `bson:"status"`
	CreatedAt           time.Time                 `bson:"created_at"`
	AvailabilityPeriods []mongoAvailabilityPeriod `bson:"availability_periods"`
}

// Create inserts the full listing aggregate — availability periods included —
// as one document, so the write either lands whole or not at all.
func (r *ListingRepository) Create(ctx context.Context, l *domain.ItemListing) (*domain.ItemListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoListing(l)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert listing: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid

	return toDomainListing(doc), nil
}

// List returns a page of listings in creation order.
func (r *ListingRepository) List(ctx context.Context, filter ports.ListListingsFilter) ([]*domain.ItemListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoListing
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	out := make([]*domain.ItemListing, len(docs))
	for i, doc := range docs {
		out[i] = toDomainListing(doc)
	}
	return out, nil
}

// EnsureIndexes creates the indexes backing the list and ownership queries.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toMongoListing(l *domain.ItemListing) mongoListing {
	periods := make([]mongoAvailabilityPeriod, len(l.AvailabilityPeriods))
	for i, p := range l.AvailabilityPeriods {
		periods[i] = mongoAvailabilityPeriod{StartDate: p.StartDate, EndDate: p.EndDate}
	}
	return mongoListing{
		UserID:              l.UserID,
		Title:               l.Title,
		Description:         l.Description,
		Price:               l.Price,
		Category:            l.Category,
		ImageURL:            l.ImageURL,
		Status:              string(l.Status),
		CreatedAt:           l.CreatedAt,
		AvailabilityPeriods: periods,
	}
}

func toDomainListing(doc mongoListing) *domain.ItemListing {
	periods := make([]domain.AvailabilityPeriod, len(doc.AvailabilityPeriods))
	for i, p := range doc.AvailabilityPeriods {
		periods[i] = domain.AvailabilityPeriod{StartDate: p.StartDate, EndDate: p.EndDate}
	}
	return &domain.ItemListing{
		ID:                  doc.ID.Hex(),
		UserID:              doc.UserID,
		Title:               doc.Title,
		Description:         doc.Description,
		Price:               doc.Price,
		Category:            doc.Category,
		ImageURL:            doc.ImageURL,
		Status:              domain.ListingStatus(doc.Status),
		CreatedAt:           doc.CreatedAt,
		AvailabilityPeriods: periods,
	}
}
