package worker

// contact_worker.go
// Delivers storefront enquiries from QueueContact to the shop inbox over
// SMTP, through a circuit breaker so a dead relay fails fast.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/infra"

	"github.com/rs/zerolog/log"
)

// ContactSender delivers one enquiry. *infra.Mailer implements it.
type ContactSender interface {
	Enabled() bool
	SendContact(msg infra.ContactMessage) error
}

type ContactWorker struct {
	sender  ContactSender
	breaker *infra.CircuitBreaker
}

func NewContactWorker(sender ContactSender, breaker *infra.CircuitBreaker) *ContactWorker {
	return &ContactWorker{sender: sender, breaker: breaker}
}

func (w *ContactWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload dto.ContactJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Permanent(err)
	}
	if payload.Email == "" || payload.Message == "" {
		return Permanent(errors.New("contact job missing email or message"))
	}

	if !w.sender.Enabled() {
		return Permanent(infra.ErrMailerDisabled)
	}

	msg := infra.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	}
	if payload.Phone != nil {
		msg.Phone = *payload.Phone
	}

	if err := w.breaker.Execute(func() error { return w.sender.SendContact(msg) }); err != nil {
		return err
	}
	log.Info().Str("from", payload.Email).Str("request_id", payload.RequestID).Msg("contact_worker: enquiry delivered")
	return nil
}
