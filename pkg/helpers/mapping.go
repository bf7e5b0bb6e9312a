package helpers

import (
	"fmt"

	"github.com/oksasatya/travel-booking/pkg/mailer"
	mailtpl "github.com/oksasatya/travel-booking/pkg/mailer/templates"
)

// EnsureRecipient fills the recipient fields templates expect from job.To.
func EnsureRecipient(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}

// NormalizeTemplate maps template aliases from older publishers onto the
// current template names. Unknown names pass through.
func NormalizeTemplate(job *mailer.EmailJob) {
	switch job.Template {
	case "booking_confirmation", "booking_new":
		job.Template = mailtpl.BookingCreated
	case "booking_update", "booking_status_changed":
		job.Template = mailtpl.BookingStatus
	}
}
