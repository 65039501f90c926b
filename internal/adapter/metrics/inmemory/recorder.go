package inmemory

import "sync"

type Snapshot struct {
	SessionTotal     uint64            `json:"session_total"`
	SessionCorrected uint64            `json:"session_corrected"`
	SessionFailed    uint64            `json:"session_failed"`
	DispatchTotal    uint64            `json:"dispatch_total"`
	DispatchError    uint64            `json:"dispatch_error"`
	ByAction         map[string]uint64 `json:"by_action"`
}

// Recorder keeps process-local counters for the ops endpoint. Counts reset
// on restart; durable history lives in the activity records.
type Recorder struct {
	mu        sync.Mutex
	sessions  uint64
	corrected uint64
	failed    uint64
	dispatch  uint64
	dispErr   uint64
	byAction  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

// RecordSession counts one completed exchange. Corrected marks exchanges
// that went through a corrective feedback round, failed marks exchanges
// that collapsed to an error outcome.
func (r *Recorder) RecordSession(corrected, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions++
	if corrected {
		r.corrected++
	}
	if failed {
		r.failed++
	}
}

func (r *Recorder) RecordDispatch(action string, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatch++
	if failed {
		r.dispErr++
	}
	r.byAction[action]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SessionTotal:     r.sessions,
		SessionCorrected: r.corrected,
		SessionFailed:    r.failed,
		DispatchTotal:    r.dispatch,
		DispatchError:    r.dispErr,
		ByAction:         make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
