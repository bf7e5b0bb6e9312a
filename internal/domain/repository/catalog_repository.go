package repository

import (
	"context"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

type PackageFilter struct {
	DestinationID string
}

// PackageRepository is read-only for API clients; Create exists for seeding.
type PackageRepository interface {
	Create(ctx context.Context, p *entity.Package) error
	GetByID(ctx context.Context, id int64) (*entity.Package, error)
	List(ctx context.Context, f PackageFilter) ([]entity.Package, error)
}

// DestinationRepository reads the static destination catalog.
type DestinationRepository interface {
	List(ctx context.Context) ([]entity.Destination, error)
	GetByID(ctx context.Context, id string) (*entity.Destination, error)
}
