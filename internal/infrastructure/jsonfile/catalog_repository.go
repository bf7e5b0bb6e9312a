package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type packageRecord struct {
	ID            int64     `json:"id"`
	DestinationID string    `json:"destinationId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	Inclusions    string    `json:"inclusions"`
	Exclusions    string    `json:"exclusions"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r packageRecord) key() int64 { return r.ID }

func (r packageRecord) toEntity() entity.Package {
	return entity.Package(r)
}

type PackageRepository struct {
	c *collection[packageRecord]
}

func (r *PackageRepository) Create(_ context.Context, p *entity.Package) error {
	return r.c.mutate(func(items []packageRecord) ([]packageRecord, error) {
		p.ID = nextID(items)
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		return append(items, packageRecord(*p)), nil
	})
}

func (r *PackageRepository) GetByID(_ context.Context, id int64) (*entity.Package, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			p := it.toEntity()
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Package not found")
}

func (r *PackageRepository) List(_ context.Context, f repository.PackageFilter) ([]entity.Package, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Package, 0, len(items))
	for _, it := range items {
		if f.DestinationID != "" && it.DestinationID != f.DestinationID {
			continue
		}
		out = append(out, it.toEntity())
	}
	return out, nil
}

var _ repository.PackageRepository = (*PackageRepository)(nil)

// DestinationCatalog serves the destination list from a JSON file. The file
// is re-read on every call so edits show up without a restart.
type DestinationCatalog struct {
	path string
}

func NewDestinationCatalog(path string) *DestinationCatalog {
	return &DestinationCatalog{path: path}
}

func (d *DestinationCatalog) List(_ context.Context) ([]entity.Destination, error) {
	b, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Destination{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read destinations: %w", err)
	}
	var out []entity.Destination
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}
	if out == nil {
		out = []entity.Destination{}
	}
	return out, nil
}

func (d *DestinationCatalog) GetByID(ctx context.Context, id string) (*entity.Destination, error) {
	all, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, apperror.NotFound("Destination not found")
}

var _ repository.DestinationRepository = (*DestinationCatalog)(nil)
