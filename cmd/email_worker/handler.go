package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-core/pkg/helpers"
	"github.com/oksasatya/go-social-core/pkg/mailer"
	mailtpl "github.com/oksasatya/go-social-core/pkg/mailer/templates"
)

type outcome int

const (
	ack     outcome = iota
	drop            // malformed or unrenderable; never retried
	requeue         // delivery failed; try again later
)

type jobHandler struct {
	sender      mailer.Sender
	logger      *logrus.Logger
	sendTimeout time.Duration
}

// handle decodes one queued EmailJob, renders its template if it names one
// and hands the result to the sender.
func (h *jobHandler) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		h.logger.WithError(err).Warn("bad email job")
		return drop
	}
	if job.To == "" {
		h.logger.Warn("email job without recipient")
		return drop
	}
	helpers.EnsureRecipientAndEmail(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, hh, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			helpers.LogError(h.logger, "render email failed", err, logrus.Fields{"template": job.Template})
			return drop
		}
		subject, text, html = s, t, hh
	}
	if subject == "" {
		subject = helpers.FallbackSubject(&job)
	}

	c, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()
	if err := h.sender.Send(c, job.To, subject, text, html); err != nil {
		helpers.LogError(h.logger, "send email failed", err, logrus.Fields{"to": job.To})
		return requeue
	}
	return ack
}
