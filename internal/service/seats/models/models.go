package models

import "github.com/vinaywa/Seat-Booking-System/internal/domain"

// Request модели

// SetActiveRequest запрос на включение/выключение места
type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// Response модели

// SeatResponse место
type SeatResponse struct {
	ID       int64  `json:"id"`
	Number   int    `json:"seatNumber"`
	Class    string `json:"seatClass"`
	IsActive bool   `json:"isActive"`
}

// SeatListResponse инвентарь мест по номеру
type SeatListResponse struct {
	Seats      []SeatResponse `json:"seats"`
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Designated int            `json:"designated"`
	Floater    int            `json:"floater"`
}

// FromDomainSeat конвертирует domain.Seat в SeatResponse
func FromDomainSeat(s *domain.Seat) SeatResponse {
	return SeatResponse{
		ID:       s.ID,
		Number:   s.Number,
		Class:    string(s.Class),
		IsActive: s.IsActive,
	}
}

// FromDomainSeatList конвертирует список мест и считает сводку
func FromDomainSeatList(seats []*domain.Seat) *SeatListResponse {
	resp := &SeatListResponse{
		Seats: make([]SeatResponse, 0, len(seats)),
		Total: len(seats),
	}
	for _, s := range seats {
		resp.Seats = append(resp.Seats, FromDomainSeat(s))
		if s.IsActive {
			resp.Active++
		}
		switch s.Class {
		case domain.SeatDesignated:
			resp.Designated++
		case domain.SeatFloater:
			resp.Floater++
		}
	}
	return resp
}
