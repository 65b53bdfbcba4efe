package worker

// dlq.go: dead letter queue
// Enquiries that could not be mailed are parked in dlq:{queue} so the shop
// can still answer them. Entries carry the sender and the request id of the
// original POST /api/contact so they can be matched against access logs.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry is one dead-lettered job.
type DLQEntry struct {
	Queue     string          `json:"queue"`
	JobType   string          `json:"job_type"`
	RequestID string          `json:"request_id,omitempty"`
	Sender    string          `json:"sender,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Reason    string          `json:"reason"`
	FailedAt  time.Time       `json:"failed_at"`
	Attempts  int             `json:"attempts"`
}

// contactRef is the part of a contact payload worth lifting into the entry.
type contactRef struct {
	Email     string `json:"email"`
	RequestID string `json:"request_id"`
}

func newDLQEntry(queue, jobType string, payload json.RawMessage, reason string, attempts int, now time.Time) DLQEntry {
	entry := DLQEntry{
		Queue:    queue,
		JobType:  jobType,
		Payload:  payload,
		Reason:   reason,
		FailedAt: now.UTC(),
		Attempts: attempts,
	}
	if jobType == JobContact {
		var ref contactRef
		if json.Unmarshal(payload, &ref) == nil {
			entry.Sender = ref.Email
			entry.RequestID = ref.RequestID
		}
	}
	return entry
}

// deadLetter records a failed job. Push failures are logged only; the job is
// lost at that point either way.
func (p *Pool) deadLetter(ctx context.Context, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := newDLQEntry(queue, jobType, payload, reason, attempts, time.Now())

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to marshal entry")
		return
	}

	dlqKey := DLQPrefix + queue
	if err := p.push.LPush(ctx, dlqKey, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", dlqKey).Str("request_id", entry.RequestID).Msg("dlq: failed to push")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("request_id", entry.RequestID).
		Str("sender", entry.Sender).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("dlq: job moved to dead letter queue")
}

// DLQLength returns the number of entries in a DLQ, reported by /health.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}

// ranger is the subset of *redis.Client used to read a DLQ.
type ranger interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// PeekDLQ returns up to n of the newest entries without removing them.
// Entries that no longer decode are skipped.
func PeekDLQ(ctx context.Context, rdb ranger, queue string, n int64) ([]DLQEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := rdb.LRange(ctx, DLQPrefix+queue, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]DLQEntry, 0, len(raw))
	for _, r := range raw {
		var e DLQEntry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			log.Warn().Err(err).Str("queue", queue).Msg("dlq: skipping undecodable entry")
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
