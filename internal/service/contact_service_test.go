package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abdullah9786/nawab-products/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQueue struct {
	payloads []interface{}
	err      error
}

func (q *stubQueue) EnqueueContact(_ context.Context, payload interface{}) error {
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

func TestSubmitContact(t *testing.T) {
	q := &stubQueue{}
	svc := &contactService{queue: q, now: func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}}

	blank := "  "
	err := svc.Submit(context.Background(), dto.ContactRequest{
		Name:    " Ayesha ",
		Email:   "ayesha@example.com",
		Phone:   &blank,
		Message: "Do you ship saffron to Dubai?",
	}, "req-1")
	require.NoError(t, err)

	require.Len(t, q.payloads, 1)
	p := q.payloads[0].(dto.ContactJobPayload)
	assert.Equal(t, "Ayesha", p.Name)
	assert.Nil(t, p.Phone)
	assert.Equal(t, "2025-03-14T09:30:00Z", p.ReceivedAt)
	assert.Equal(t, "req-1", p.RequestID)
}

func TestSubmitContact_Invalid(t *testing.T) {
	q := &stubQueue{}
	svc := NewContactService(q)

	err := svc.Submit(context.Background(), dto.ContactRequest{Name: "A", Email: "not-an-email"}, "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "message is required")
	assert.Empty(t, q.payloads)
}

func TestSubmitContact_QueueFailureIsInternal(t *testing.T) {
	svc := NewContactService(&stubQueue{err: errors.New("redis down")})

	err := svc.Submit(context.Background(), dto.ContactRequest{
		Name: "A", Email: "a@example.com", Message: "hi",
	}, "")
	require.Error(t, err)
	assert.Zero(t, KindOf(err))
}
