package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `id, user_id, host_id, title, start_date, end_date, guests, price, notes, status, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		b      entity.Booking
		status string
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.HostID, &b.Title, &b.StartDate, &b.EndDate,
		&b.Guests, &b.Price, &b.Notes, &status, &b.CreatedAt); err != nil {
		return nil, err
	}
	st, err := entity.ParseBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", b.ID, err)
	}
	b.Status = st
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (user_id, host_id, title, start_date, end_date, guests, price, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, b.UserID, b.HostID, b.Title, b.StartDate, b.EndDate, b.Guests, b.Price, b.Notes, string(b.Status))
	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(err, "Booking not found")
	}
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]entity.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE ($1::bigint = 0 OR user_id = $1)
		  AND ($2::bigint = 0 OR host_id = $2)
		  AND ($3::text = '' OR status = $3)
		ORDER BY id
	`, f.UserID, f.HostID, string(f.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, `
		UPDATE bookings SET status = $1 WHERE id = $2
		RETURNING `+bookingColumns, string(status), id))
	if err != nil {
		return nil, mapErr(err, "Booking not found")
	}
	return b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("Booking not found")
	}
	return nil
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
