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

type userDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d userDoc) toEntity() (*entity.User, error) {
	role, err := entity.ParseRole(d.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", d.ID, err)
	}
	return &entity.User{ID: d.ID, Name: d.Name, Email: d.Email, Password: d.Password, Role: role, CreatedAt: d.CreatedAt}, nil
}

type UserRepository struct {
	coll *mongo.Collection
	seq  *counters
}

// emailCollation matches the unique index so lookups are case-insensitive.
var emailCollation = &options.Collation{Locale: "en", Strength: 2}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	id, err := r.seq.next(ctx, usersCollection)
	if err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	doc := userDoc{ID: id, Name: u.Name, Email: u.Email, Password: u.Password, Role: string(u.Role), CreatedAt: u.CreatedAt}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapErr(err, "User not found")
	}
	u.ID = id
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&d); err != nil {
		return nil, mapErr(err, "User not found")
	}
	return d.toEntity()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, byID(id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne().SetCollation(emailCollation))
}

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]entity.User, error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = string(f.Role)
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	var d userDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(u.ID), bson.M{"$set": bson.M{
		"name": u.Name, "email": u.Email, "password": u.Password, "role": string(u.Role),
	}}).Decode(&d)
	if err != nil {
		return mapErr(err, "User not found")
	}
	u.CreatedAt = d.CreatedAt
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments, "User not found")
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
