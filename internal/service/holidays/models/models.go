package models

import (
	"strings"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// Request модели

// CreateHolidayRequest запрос на добавление праздника
type CreateHolidayRequest struct {
	Date   time.Time `json:"-"`
	Reason string    `json:"reason"`
}

// Normalize обрезает пробелы в описании
func (r *CreateHolidayRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

// Response модели

// HolidayResponse праздник
type HolidayResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// HolidayListResponse список праздников по возрастанию даты
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total"`
}

// FromDomainHoliday конвертирует domain.Holiday в HolidayResponse
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format(domain.DateFormat),
		Reason: h.Reason,
	}
}

// FromDomainHolidayList конвертирует список праздников
func FromDomainHolidayList(holidays []*domain.Holiday) *HolidayListResponse {
	resp := &HolidayListResponse{
		Holidays: make([]HolidayResponse, 0, len(holidays)),
		Total:    len(holidays),
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, FromDomainHoliday(h))
	}
	return resp
}
