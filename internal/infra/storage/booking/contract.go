package booking

import (
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
