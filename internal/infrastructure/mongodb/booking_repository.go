package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type bookingDoc struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"userId"`
	HostID    int64     `bson:"hostId"`
	Title     string    `bson:"title"`
	StartDate string    `bson:"startDate"`
	EndDate   string    `bson:"endDate"`
	Guests    string    `bson:"guests"`
	Price     string    `bson:"price"`
	Notes     *string   `bson:"notes"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d bookingDoc) toEntity() (*entity.Booking, error) {
	st, err := entity.ParseBookingStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", d.ID, err)
	}
	return &entity.Booking{
		ID: d.ID, UserID: d.UserID, HostID: d.HostID, Title: d.Title,
		StartDate: d.StartDate, EndDate: d.EndDate, Guests: d.Guests, Price: d.Price,
		Notes: d.Notes, Status: st, CreatedAt: d.CreatedAt,
	}, nil
}

type BookingRepository struct {
	coll *mongo.Collection
	seq  *counters
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	id, err := r.seq.next(ctx, bookingsCollection)
	if err != nil {
		return err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err = r.coll.InsertOne(ctx, bookingDoc{
		ID: id, UserID: b.UserID, HostID: b.HostID, Title: b.Title,
		StartDate: b.StartDate, EndDate: b.EndDate, Guests: b.Guests, Price: b.Price,
		Notes: b.Notes, Status: string(b.Status), CreatedAt: b.CreatedAt,
	})
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var d bookingDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&d); err != nil {
		return nil, mapErr(err, "Booking not found")
	}
	return d.toEntity()
}

func (r *BookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]entity.Booking, error) {
	filter := bson.M{}
	if f.UserID != 0 {
		filter["userId"] = f.UserID
	}
	if f.HostID != 0 {
		filter["hostId"] = f.HostID
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Booking, 0, len(docs))
	for _, d := range docs {
		b, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	var d bookingDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(id),
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		return nil, mapErr(err, "Booking not found")
	}
	return d.toEntity()
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments, "Booking not found")
	}
	return nil
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
