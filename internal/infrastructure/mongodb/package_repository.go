package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type packageDoc struct {
	ID            int64     `bson:"_id"`
	DestinationID string    `bson:"destinationId"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	Duration      string    `bson:"duration"`
	Price         string    `bson:"price"`
	Inclusions    string    `bson:"inclusions"`
	Exclusions    string    `bson:"exclusions"`
	CreatedAt     time.Time `bson:"createdAt"`
}

type PackageRepository struct {
	coll *mongo.Collection
	seq  *counters
}

func (r *PackageRepository) Create(ctx context.Context, p *entity.Package) error {
	id, err := r.seq.next(ctx, packagesCollection)
	if err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.ID = id
	if _, err := r.coll.InsertOne(ctx, packageDoc(*p)); err != nil {
		p.ID = 0
		return err
	}
	return nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*entity.Package, error) {
	var d packageDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&d); err != nil {
		return nil, mapErr(err, "Package not found")
	}
	p := entity.Package(d)
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context, f repository.PackageFilter) ([]entity.Package, error) {
	filter := bson.M{}
	if f.DestinationID != "" {
		filter["destinationId"] = f.DestinationID
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []packageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Package, 0, len(docs))
	for _, d := range docs {
		out = append(out, entity.Package(d))
	}
	return out, nil
}

var _ repository.PackageRepository = (*PackageRepository)(nil)
