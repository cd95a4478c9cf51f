package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/repository"

	"go.uber.org/zap"
)

// NotifyReasonUnconfigured is recorded when no email can be attempted.
const NotifyReasonUnconfigured = "Missing RESEND_API_KEY, RESIDENTIAL_EMAIL_FROM, or tech email"

// EmailSender is implemented by pkg/email.Client.
type EmailSender interface {
	IsEnabled() bool
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// Notifier emails an assigned technician and reports the outcome as data. It never
// returns an error.
type Notifier struct {
	sender  EmailSender
	timeout time.Duration
	log     *zap.Logger
	clock   Clock
}

func NewNotifier(sender EmailSender, timeout time.Duration, log *zap.Logger, clock Clock) *Notifier {
	return &Notifier{sender: sender, timeout: timeout, log: log, clock: clock}
}

func (n *Notifier) Notify(ctx context.Context, to, subject string, lines []string) models.EmailNotification {
	result := models.EmailNotification{}

	if n == nil || n.sender == nil || !n.sender.IsEnabled() || strings.TrimSpace(to) == "" {
		result.Reason = NotifyReasonUnconfigured
		if n != nil {
			result.NotifiedAt = n.clock.now()
		} else {
			result.NotifiedAt = time.Now().UTC()
		}
		return result
	}

	sendCtx := ctx
	if n.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	id, err := n.sender.Send(sendCtx, to, subject, strings.Join(lines, "\n"))
	result.NotifiedAt = n.clock.now()
	if err != nil {
		n.log.Warn("technician notification failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		result.Reason = fmt.Sprintf("Resend error: %v", err)
		return result
	}

	result.Sent = true
	result.MessageID = id
	return result
}

// ResolveTech finds the technician by id, then by a case-insensitive name match. An
// unresolved name is kept with an empty id and email.
func ResolveTech(ctx context.Context, techs repository.TechnicianRepository, id, name string) (models.TechContact, error) {
	if id = strings.TrimSpace(id); id != "" {
		tech, err := techs.GetByID(ctx, id)
		switch {
		case err == nil:
			return models.TechContact{ID: id, Name: firstNonEmpty(tech.Name, name), Email: tech.Email}, nil
		case !ierr.IsNotFound(err):
			return models.TechContact{}, err
		}
	}

	if strings.TrimSpace(name) == "" {
		return models.TechContact{}, nil
	}

	tech, err := techs.FindByName(ctx, name)
	if err != nil {
		return models.TechContact{}, err
	}
	if tech == nil {
		return models.TechContact{Name: name}, nil
	}
	return models.TechContact{ID: tech.ID, Name: firstNonEmpty(tech.Name, name), Email: tech.Email}, nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
