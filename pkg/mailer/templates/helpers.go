package templates

import (
	"github.com/oksasatya/travel-booking/config"
)

// Option pattern
type Option func(*EmailData)

// WithBooking copies the booking fields shown in notification e-mails.
// Dates are expected pre-formatted for humans.
func WithBooking(id int64, title, start, end, guests, price, status string) Option {
	return func(d *EmailData) {
		d.BookingID = id
		d.Title = title
		d.StartDate = start
		d.EndDate = end
		d.Guests = guests
		d.Price = price
		d.Status = status
	}
}

// NewBaseEmailData fills the shared fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,

		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,

		LogoURL:     cfg.LogoURL,
		SupportURL:  cfg.SupportURL,
		BookingsURL: cfg.BookingsURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewBookingCreatedData(cfg *config.Config, name, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, recipient, opts...))
}

func NewBookingStatusData(cfg *config.Config, name, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, recipient, opts...))
}

func NewWelcomeData(cfg *config.Config, name, recipient string) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, recipient))
}
