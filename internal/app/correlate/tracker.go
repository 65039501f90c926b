package correlate

import (
	"context"
	"sync"
	"time"

	"armbridge/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// Tracker issues correlation tokens for in-flight requests and finalizes
// them into the activity sink exactly once. A record whose flow is
// abandoned stays pending forever; PendingCount makes that observable.
type Tracker struct {
	mu      sync.Mutex
	pending map[string]ports.ActivityRecord

	sink  ports.ActivityRecordRepository
	now   func() time.Time
	newID func() string
}

func NewTracker(sink ports.ActivityRecordRepository) *Tracker {
	return &Tracker{
		pending: make(map[string]ports.ActivityRecord),
		sink:    sink,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Open registers a new in-flight request and returns its opaque token.
func (t *Tracker) Open(kind, request string, score *int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	token := t.newID()
	t.pending[token] = ports.ActivityRecord{
		ID:        token,
		Timestamp: t.now(),
		Kind:      kind,
		Request:   request,
		Score:     score,
	}
	return token
}

// Close finalizes a pending record and appends it to the sink. An unknown
// token is a no-op with a warning, never a fault.
func (t *Tracker) Close(ctx context.Context, token, reply, action string, duration *float64, score *int) error {
	t.mu.Lock()
	record, ok := t.pending[token]
	if !ok {
		t.mu.Unlock()
		hlog.Warnf("activity close for unknown token %q", token)
		return nil
	}
	delete(t.pending, token)
	t.mu.Unlock()

	record.Reply = reply
	record.Action = action
	record.DurationSeconds = duration
	if score != nil {
		record.Score = score
	}

	if err := t.sink.Append(ctx, record); err != nil {
		hlog.Errorf("append activity record %s: %v", token, err)
		return err
	}
	return nil
}

// PendingCount reports how many opened records were never finalized.
func (t *Tracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
