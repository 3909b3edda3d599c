// utils/notify.go
package utils

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxPendingToasts caps the undelivered notice buffer; older notices are
// dropped first.
const maxPendingToasts = 50

// Toast is one transient user-facing notice
type Toast struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToastService collects user-visible notices raised by store operations and
// hands them to the client in order. It is the toast surface of the UI:
// every notice is also logged as a structured event.
type ToastService struct {
	mu      sync.Mutex
	logger  *zap.Logger
	pending []Toast
}

// NewToastService creates a ToastService that logs through logger.
func NewToastService(logger *zap.Logger) *ToastService {
	return &ToastService{logger: logger}
}

// Notify records one notice for the client to pick up.
func (ts *ToastService) Notify(title, description string) {
	ts.mu.Lock()
	ts.pending = append(ts.pending, Toast{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
	if len(ts.pending) > maxPendingToasts {
		ts.pending = ts.pending[len(ts.pending)-maxPendingToasts:]
	}
	ts.mu.Unlock()

	ts.logger.Info("toast",
		zap.String("title", title),
		zap.String("description", description),
	)
}

// Drain returns all undelivered notices and empties the buffer.
func (ts *ToastService) Drain() []Toast {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := ts.pending
	ts.pending = nil
	return out
}
