package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/mailer"
	mailtpl "github.com/soujunior/vagas-api/pkg/mailer/templates"
)

type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type outcome int

const (
	ack outcome = iota
	drop
	retry
)

type worker struct {
	mail    sender
	logger  *logrus.Logger
	timeout time.Duration
}

// handle renders and sends one queued job. Malformed or unrenderable jobs are
// dropped; delivery failures go back on the queue.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogError(w.logger, "bad message", err, nil)
		return drop
	}
	if job.To == "" {
		helpers.LogError(w.logger, "bad message", fmt.Errorf("missing recipient"), logrus.Fields{"template": job.Template})
		return drop
	}

	helpers.PrepareEmailJob(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			helpers.LogError(w.logger, "render failed", err, logrus.Fields{"template": job.Template})
			return drop
		}
		text, html = t, h
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.mail.Send(c, job.To, subject, text, html); err != nil {
		helpers.LogError(w.logger, "send failed", err, logrus.Fields{"to": job.To, "subject": subject})
		return retry
	}
	w.logger.WithFields(logrus.Fields{"to": job.To, "subject": subject}).Info("email sent")
	return ack
}
