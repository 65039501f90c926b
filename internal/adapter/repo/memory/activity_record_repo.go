package memory

import (
	"context"

	"armbridge/internal/app/ports"
)

type ActivityRecordRepo struct {
	store *Store
}

func NewActivityRecordRepo(store *Store) ActivityRecordRepo {
	return ActivityRecordRepo{store: store}
}

func (r ActivityRecordRepo) Append(_ context.Context, record ports.ActivityRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records = append(r.store.records, record)
	return nil
}

func (r ActivityRecordRepo) ListLatest(_ context.Context, limit int) ([]ports.ActivityRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := len(r.store.records)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]ports.ActivityRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.store.records[i])
	}
	return out, nil
}
