package memory

import (
	"sync"

	"armbridge/internal/app/ports"
)

// Store backs the in-memory adapters used by tests and DSN-less runs.
type Store struct {
	mu      sync.RWMutex
	records []ports.ActivityRecord
}

func NewStore() *Store {
	return &Store{}
}
