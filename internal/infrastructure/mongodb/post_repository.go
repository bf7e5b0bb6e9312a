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

type postDoc struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"userId"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	Category  string    `bson:"category"`
	Status    string    `bson:"status"`
	CoverURL  string    `bson:"coverUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d postDoc) toEntity() (*entity.Post, error) {
	st, err := entity.ParsePostStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", d.ID, err)
	}
	return &entity.Post{
		ID: d.ID, UserID: d.UserID, Title: d.Title, Content: d.Content,
		Category: d.Category, Status: st, CoverURL: d.CoverURL, CreatedAt: d.CreatedAt,
	}, nil
}

type PostRepository struct {
	coll *mongo.Collection
	seq  *counters
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	id, err := r.seq.next(ctx, postsCollection)
	if err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err = r.coll.InsertOne(ctx, postDoc{
		ID: id, UserID: p.UserID, Title: p.Title, Content: p.Content,
		Category: p.Category, Status: string(p.Status), CoverURL: p.CoverURL, CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var d postDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&d); err != nil {
		return nil, mapErr(err, "Post not found")
	}
	return d.toEntity()
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, error) {
	filter := bson.M{}
	if f.UserID != 0 {
		filter["userId"] = f.UserID
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Post, 0, len(docs))
	for _, d := range docs {
		p, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	var d postDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(p.ID), bson.M{"$set": bson.M{
		"title": p.Title, "content": p.Content, "category": p.Category,
		"status": string(p.Status), "coverUrl": p.CoverURL,
	}}).Decode(&d)
	if err != nil {
		return mapErr(err, "Post not found")
	}
	p.UserID = d.UserID
	p.CreatedAt = d.CreatedAt
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments, "Post not found")
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
