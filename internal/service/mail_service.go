package service

//go:generate mockgen -source=mail_service.go -destination=mock/mail_service.go -package=mock

import (
	"context"
	"fmt"
	netmail "net/mail"
	"strings"

	"golang.org/x/sync/errgroup"

	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/mail"
	"evalreport/backend/internal/metrics"
	"evalreport/backend/internal/model"
)

// LocalizedReport pairs a report with the language it is written in.
type LocalizedReport struct {
	Language model.Language
	Report   model.EvaluationReport
}

// MailService emails rendered reports.
type MailService interface {
	// Enabled reports whether a sender is configured.
	Enabled() bool
	// SendReports sends one email per report, concurrently. An empty
	// recipients list falls back to the configured default recipients.
	SendReports(ctx context.Context, candidate model.Candidate, recipients []string, reports []LocalizedReport) error
}

type mailService struct {
	sender    mail.Sender
	renderer  *mail.Renderer
	from      string
	defaultTo []string
}

// NewMailService creates a mail service. A nil sender disables delivery.
func NewMailService(sender mail.Sender, renderer *mail.Renderer, from string, defaultTo []string) MailService {
	return &mailService{
		sender:    sender,
		renderer:  renderer,
		from:      from,
		defaultTo: defaultTo,
	}
}

func (s *mailService) Enabled() bool {
	return s.sender != nil && s.renderer != nil && s.from != ""
}

func (s *mailService) SendReports(ctx context.Context, candidate model.Candidate, recipients []string, reports []LocalizedReport) error {
	if !s.Enabled() {
		return ErrMailDisabled
	}

	to, err := ParseRecipients(recipients)
	if err != nil {
		return err
	}
	if len(to) == 0 {
		if to, err = ParseRecipients(s.defaultTo); err != nil {
			return err
		}
	}
	if len(to) == 0 {
		return fmt.Errorf("%w: no email recipients", ErrInvalid)
	}

	msgs := make([]mail.Message, 0, len(reports))
	for _, r := range reports {
		rendered, err := s.renderer.Render(r.Report, candidate, r.Language)
		if err != nil {
			return fmt.Errorf("render %s report: %w", r.Language.Code, err)
		}
		msgs = append(msgs, mail.Message{
			From:    s.from,
			To:      to,
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		})
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, msg := range msgs {
		g.Go(func() error {
			err := s.sender.Send(ctx, msg)
			metrics.EmailsTotal.WithLabelValues(metrics.Result(err)).Inc()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("report email failed", "module", "service", "action", "send", "resource", "email", "result", "failed", "error", err)
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	logger.Info("report email sent", "module", "service", "action", "send", "resource", "email", "result", "ok", "messages", len(msgs), "recipients", len(to))
	return nil
}

// ParseRecipients splits comma separated entries, drops blanks and checks
// each address the way the SMTP client will when building the message.
func ParseRecipients(list []string) ([]string, error) {
	var out []string
	for _, item := range list {
		for _, addr := range strings.Split(item, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			if _, err := netmail.ParseAddress(addr); err != nil {
				return nil, fmt.Errorf("%w: invalid email recipient %q", ErrInvalid, addr)
			}
			out = append(out, addr)
		}
	}
	return out, nil
}
