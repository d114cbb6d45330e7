package memstore

import (
	"context"
	"sync"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// Events запоминает уведомления Dispatcher для проверок в тестах
type Events struct {
	mu        sync.Mutex
	ChangeLog []string
	RejectLog []string
}

func (e *Events) Changed(_ context.Context, operation string, booking *domain.Booking, _ int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ChangeLog = append(e.ChangeLog, operation+":"+string(booking.Status))
}

func (e *Events) Rejected(operation, code string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.RejectLog = append(e.RejectLog, operation+":"+code)
}
