package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdullah9786/nawab-products/internal/dto"
)

// ContactQueue accepts enquiries for asynchronous delivery.
type ContactQueue interface {
	EnqueueContact(ctx context.Context, payload interface{}) error
}

type ContactService interface {
	// Submit validates an enquiry and queues it for mailing.
	Submit(ctx context.Context, req dto.ContactRequest, requestID string) error
}

type contactService struct {
	queue ContactQueue
	now   func() time.Time
}

func NewContactService(q ContactQueue) ContactService {
	return &contactService{queue: q, now: time.Now}
}

func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest, requestID string) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		req.Phone = &phone
		if phone == "" {
			req.Phone = nil
		}
	}
	if err := checkStruct(&req); err != nil {
		return err
	}

	payload := dto.ContactJobPayload{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		ReceivedAt: s.now().UTC().Format(time.RFC3339),
		RequestID:  requestID,
	}
	if err := s.queue.EnqueueContact(ctx, payload); err != nil {
		return fmt.Errorf("enqueue contact: %w", err)
	}
	return nil
}
