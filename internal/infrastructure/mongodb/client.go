// Package mongodb is the MongoDB storage backend. Documents keep integer ids
// handed out by a counters collection so the API shape matches the other
// backends.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
)

const (
	usersCollection    = "users"
	bookingsCollection = "bookings"
	postsCollection    = "posts"
	packagesCollection = "packages"
	countersCollection = "counters"
)

// Store wraps one database and the repositories built on it.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	seq    *counters
}

// Connect dials uri, pings the server and ensures indexes exist.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	db := client.Database(database)
	s := &Store{client: client, db: db, seq: &counters{coll: db.Collection(countersCollection)}}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return err
	}
	_, err = s.db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "hostId", Value: 1}}},
	})
	return err
}

func (s *Store) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

func (s *Store) Ping(ctx context.Context) error { return s.client.Ping(ctx, nil) }

func (s *Store) Users() *UserRepository {
	return &UserRepository{coll: s.db.Collection(usersCollection), seq: s.seq}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{coll: s.db.Collection(bookingsCollection), seq: s.seq}
}

func (s *Store) Posts() *PostRepository {
	return &PostRepository{coll: s.db.Collection(postsCollection), seq: s.seq}
}

func (s *Store) Packages() *PackageRepository {
	return &PackageRepository{coll: s.db.Collection(packagesCollection), seq: s.seq}
}

func mapErr(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperror.NotFound(notFound)
	case mongo.IsDuplicateKeyError(err):
		return apperror.New(apperror.ErrDuplicate, "Email already exists")
	default:
		return err
	}
}

// byID is the filter for a single integer-keyed document.
func byID(id int64) bson.M { return bson.M{"_id": id} }
