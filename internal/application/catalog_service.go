package application

import (
	"context"
	"strings"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

// CatalogService serves the public destination and package catalog.
type CatalogService struct {
	destinations repository.DestinationRepository
	packages     repository.PackageRepository
}

func NewCatalogService(destinations repository.DestinationRepository, packages repository.PackageRepository) *CatalogService {
	return &CatalogService{destinations: destinations, packages: packages}
}

func (s *CatalogService) Destinations(ctx context.Context) ([]entity.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *CatalogService) Destination(ctx context.Context, id string) (*entity.Destination, error) {
	return s.destinations.GetByID(ctx, strings.TrimSpace(id))
}

// Packages lists the packages of one destination. No destination means no
// packages.
func (s *CatalogService) Packages(ctx context.Context, destinationID string) ([]entity.Package, error) {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return []entity.Package{}, nil
	}
	return s.packages.List(ctx, repository.PackageFilter{DestinationID: destinationID})
}
