package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/pkg/helpers"
	"github.com/oksasatya/travel-booking/pkg/mailer"
	mailtpl "github.com/oksasatya/travel-booking/pkg/mailer/templates"
)

const sendTimeout = 15 * time.Second

type outcome int

const (
	ack outcome = iota
	retry
	drop
)

type worker struct {
	sender mailer.Sender
	logger *logrus.Logger
}

// handle renders and sends one job. Malformed or unrenderable jobs are
// dropped; delivery failures are retried.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		return drop
	}
	if job.To == "" {
		w.logger.Warn("job without recipient")
		return drop
	}

	helpers.EnsureRecipient(&job)
	helpers.NormalizeTemplate(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if !job.Rendered() {
		s, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			w.logger.WithError(err).WithField("template", job.Template).Warn("render failed")
			return drop
		}
		subject, text, html = s, t, h
	}

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := w.sender.Send(c, job.To, subject, text, html); err != nil {
		w.logger.WithError(err).WithField("to", job.To).Error("send failed")
		return retry
	}
	w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	return ack
}
