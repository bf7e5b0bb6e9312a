package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

const packageColumns = `id, destination_id, name, description, duration, price, inclusions, exclusions, created_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(&p.ID, &p.DestinationID, &p.Name, &p.Description, &p.Duration,
		&p.Price, &p.Inclusions, &p.Exclusions, &p.CreatedAt)
	return &p, err
}

func (r *PackageRepository) Create(ctx context.Context, p *entity.Package) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO packages (destination_id, name, description, duration, price, inclusions, exclusions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.DestinationID, p.Name, p.Description, p.Duration, p.Price, p.Inclusions, p.Exclusions)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*entity.Package, error) {
	p, err := scanPackage(r.pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(err, "Package not found")
	}
	return p, nil
}

func (r *PackageRepository) List(ctx context.Context, f repository.PackageFilter) ([]entity.Package, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+packageColumns+` FROM packages
		WHERE ($1::text = '' OR destination_id = $1)
		ORDER BY id
	`, f.DestinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

var _ repository.PackageRepository = (*PackageRepository)(nil)
