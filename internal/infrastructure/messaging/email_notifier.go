// Package messaging turns domain events into e-mail jobs on the broker.
package messaging

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/config"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/pkg/helpers"
	"github.com/oksasatya/travel-booking/pkg/mailer"
	mailtpl "github.com/oksasatya/travel-booking/pkg/mailer/templates"
)

// Publisher puts one JSON message on the e-mail queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// EmailNotifier publishes mailer.EmailJob messages for the e-mail worker.
type EmailNotifier struct {
	pub    Publisher
	users  repository.UserRepository
	cfg    *config.Config
	logger *logrus.Logger
}

func NewEmailNotifier(pub Publisher, users repository.UserRepository, cfg *config.Config, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{pub: pub, users: users, cfg: cfg, logger: logger}
}

func (n *EmailNotifier) UserRegistered(ctx context.Context, u entity.User) {
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.cfg, u.Name, u.Email),
	})
}

// BookingCreated mails the traveler and, when it is a different account, the host.
func (n *EmailNotifier) BookingCreated(ctx context.Context, b entity.Booking) {
	for _, id := range recipients(b) {
		u, ok := n.lookup(ctx, id)
		if !ok {
			continue
		}
		n.publish(ctx, mailer.EmailJob{
			To:       u.Email,
			Template: mailtpl.BookingCreated,
			Data:     mailtpl.NewBookingCreatedData(n.cfg, u.Name, u.Email, bookingOption(b)),
		})
	}
}

// BookingStatusChanged mails the traveler who made the booking.
func (n *EmailNotifier) BookingStatusChanged(ctx context.Context, b entity.Booking) {
	u, ok := n.lookup(ctx, b.UserID)
	if !ok {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.BookingStatus,
		Data:     mailtpl.NewBookingStatusData(n.cfg, u.Name, u.Email, bookingOption(b)),
	})
}

func recipients(b entity.Booking) []int64 {
	if b.HostID == b.UserID {
		return []int64{b.UserID}
	}
	return []int64{b.UserID, b.HostID}
}

func bookingOption(b entity.Booking) mailtpl.Option {
	return mailtpl.WithBooking(b.ID, b.Title, helpers.HumanDate(b.StartDate), helpers.HumanDate(b.EndDate),
		b.Guests, b.Price, string(b.Status))
}

func (n *EmailNotifier) lookup(ctx context.Context, id int64) (*entity.User, bool) {
	u, err := n.users.GetByID(ctx, id)
	if err != nil {
		n.logger.WithError(err).WithField("user_id", id).Warn("notification recipient lookup failed")
		return nil, false
	}
	return u, true
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob) {
	if err := n.pub.PublishJSON(ctx, job); err != nil {
		n.logger.WithError(err).WithFields(logrus.Fields{"template": job.Template, "to": job.To}).Error("publish email job failed")
		return
	}
	n.logger.WithFields(logrus.Fields{"template": job.Template, "to": job.To}).Debug("email job queued")
}
