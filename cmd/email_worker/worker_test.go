package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/pkg/mailer"
	mailtpl "github.com/oksasatya/travel-booking/pkg/mailer/templates"
)

type sent struct{ to, subject, text, html string }

type fakeSender struct {
	got []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, sent{to, subject, text, html})
	return nil
}

func newWorker(s mailer.Sender) *worker {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &worker{sender: s, logger: l}
}

func encode(t *testing.T, job mailer.EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestHandleRendersTemplate(t *testing.T) {
	s := &fakeSender{}
	job := mailer.EmailJob{
		To:       "tara@x.com",
		Template: "booking_confirmation",
		Data:     mailtpl.ToMap(mailtpl.EmailData{Name: "Tara", Title: "Goa Trip", BookingID: 3, Status: "pending"}),
	}
	assert.Equal(t, ack, newWorker(s).handle(context.Background(), encode(t, job)))
	require.Len(t, s.got, 1)
	assert.Equal(t, "tara@x.com", s.got[0].to)
	assert.Contains(t, s.got[0].html, "Goa Trip")
	assert.NotEmpty(t, s.got[0].subject)
}

func TestHandlePreRenderedJob(t *testing.T) {
	s := &fakeSender{}
	job := mailer.EmailJob{To: "a@x.com", Subject: "Hi", Text: "plain"}
	assert.Equal(t, ack, newWorker(s).handle(context.Background(), encode(t, job)))
	assert.Equal(t, sent{"a@x.com", "Hi", "plain", ""}, s.got[0])
}

func TestHandleFailures(t *testing.T) {
	w := newWorker(&fakeSender{})
	ctx := context.Background()

	assert.Equal(t, drop, w.handle(ctx, []byte("{oops")))
	assert.Equal(t, drop, w.handle(ctx, encode(t, mailer.EmailJob{Template: mailtpl.Welcome})))
	assert.Equal(t, drop, w.handle(ctx, encode(t, mailer.EmailJob{To: "a@x.com", Template: "nope"})))

	failing := newWorker(&fakeSender{err: errors.New("mailgun 503")})
	welcome := mailer.EmailJob{To: "a@x.com", Template: mailtpl.Welcome, Data: mailtpl.ToMap(mailtpl.EmailData{Name: "A"})}
	assert.Equal(t, retry, failing.handle(ctx, encode(t, welcome)))
}
