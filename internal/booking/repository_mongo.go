package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

const mongoCollection = "bookings"

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(mongoCollection)}
}

type bookingDocument struct {
	ID        string    `bson:"_id"`
	CheckIn   time.Time `bson:"check_in"`
	CheckOut  time.Time `bson:"check_out"`
	CreatedAt time.Time `bson:"created_at"`
}

func newBookingDocument(b *Booking) bookingDocument {
	return bookingDocument{
		ID:        b.ID,
		CheckIn:   b.CheckIn.UTC(),
		CheckOut:  b.CheckOut.UTC(),
		CreatedAt: b.CreatedAt.UTC(),
	}
}

func (d bookingDocument) toBooking() *Booking {
	return normalize(&Booking{
		ID:        d.ID,
		CheckIn:   d.CheckIn,
		CheckOut:  d.CheckOut,
		CreatedAt: d.CreatedAt,
	})
}

func (r *mongoRepository) Create(ctx context.Context, b *Booking) error {
	if _, err := r.col.InsertOne(ctx, newBookingDocument(b)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Wrap(err, ErrAlreadyExists.Code, ErrAlreadyExists.Message)
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return doc.toBooking(), nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings failed: %w", err)
	}

	bookings := make([]*Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, doc.toBooking())
	}
	return bookings, nil
}

func (r *mongoRepository) Update(ctx context.Context, b *Booking) error {
	update := bson.M{"$set": bson.M{
		"check_in":  b.CheckIn.UTC(),
		"check_out": b.CheckOut.UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": b.ID}, update)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
