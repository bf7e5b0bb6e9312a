package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Subject/Text/HTML are given directly, or Template and Data are
// rendered by the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "booking_created", "booking_status", "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Rendered reports whether the job already carries a body.
func (j EmailJob) Rendered() bool {
	return j.Template == "" && (j.Text != "" || j.HTML != "")
}
