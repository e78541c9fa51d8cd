package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-social-core/pkg/mailer"
	mailtpl "github.com/oksasatya/go-social-core/pkg/mailer/templates"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{to, subject, text, html})
	return nil
}

func newHandler(s mailer.Sender) *jobHandler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &jobHandler{sender: s, logger: logger, sendTimeout: time.Second}
}

func body(t *testing.T, job mailer.EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestHandleRendersNotification(t *testing.T) {
	fs := &fakeSender{}
	h := newHandler(fs)
	job := mailer.EmailJob{
		To:       "bob@example.com",
		Template: mailtpl.Notification,
		Data: mailtpl.NewNotificationData(mailtpl.Brand{AppName: "Social Core", CompanyName: "Social Core"},
			"bob@example.com", "you have mail", mailtpl.WithName("bob")),
	}

	assert.Equal(t, ack, h.handle(context.Background(), body(t, job)))
	require.Len(t, fs.out, 1)
	assert.Equal(t, "bob@example.com", fs.out[0].to)
	assert.NotEmpty(t, fs.out[0].subject)
	assert.Contains(t, fs.out[0].text, "you have mail")
	assert.Contains(t, fs.out[0].html, "you have mail")
}

func TestHandlePlainJobUsesFallbackSubject(t *testing.T) {
	fs := &fakeSender{}
	h := newHandler(fs)
	assert.Equal(t, ack, h.handle(context.Background(), body(t, mailer.EmailJob{To: "a@example.com", Text: "hi"})))
	require.Len(t, fs.out, 1)
	assert.Equal(t, "Notification", fs.out[0].subject)
}

func TestHandleDropsBadJobs(t *testing.T) {
	fs := &fakeSender{}
	h := newHandler(fs)
	assert.Equal(t, drop, h.handle(context.Background(), []byte("{")))
	assert.Equal(t, drop, h.handle(context.Background(), body(t, mailer.EmailJob{Text: "no recipient"})))
	assert.Equal(t, drop, h.handle(context.Background(), body(t, mailer.EmailJob{To: "a@example.com", Template: "missing"})))
	assert.Empty(t, fs.out)
}

func TestHandleRequeuesOnSendFailure(t *testing.T) {
	h := newHandler(&fakeSender{err: errors.New("mailgun down")})
	assert.Equal(t, requeue, h.handle(context.Background(), body(t, mailer.EmailJob{To: "a@example.com", Subject: "s"})))
}
