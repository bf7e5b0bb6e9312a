package application

import (
	"math"
	"strconv"
	"strings"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

// Revenue is the admin revenue summary. RevenueByHost is keyed by host id.
type Revenue struct {
	TotalRevenue   float64            `json:"totalRevenue"`
	MonthlyRevenue map[string]float64 `json:"monthlyRevenue"`
	RevenueByHost  map[int64]float64  `json:"revenueByHost"`
}

// AggregateRevenue sums the price of confirmed bookings. Prices that do not
// parse count as 0. A booking whose start date does not parse counts toward
// the total and its host but has no month.
func AggregateRevenue(bookings []entity.Booking) Revenue {
	r := Revenue{
		MonthlyRevenue: map[string]float64{},
		RevenueByHost:  map[int64]float64{},
	}
	for _, b := range bookings {
		if b.Status != entity.BookingConfirmed {
			continue
		}
		amount := parsePrice(b.Price)
		r.TotalRevenue += amount
		r.RevenueByHost[b.HostID] += amount
		if t, ok := helpers.ParseDate(b.StartDate); ok {
			r.MonthlyRevenue[t.Format("2006-01")] += amount
		}
	}
	return r
}

func parsePrice(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
