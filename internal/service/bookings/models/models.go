package models

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// Response модели

// BookingResponse бронь с данными места и пользователя
type BookingResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	Batch      string    `json:"batch"`
	SeatID     int64     `json:"seatId"`
	SeatNumber int       `json:"seatNumber"`
	SeatClass  string    `json:"seatClass"`
	Date       string    `json:"date"` // "2026-01-12"
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ReleaseResponse освобожденная бронь
type ReleaseResponse struct {
	ID     int64  `json:"id"`
	SeatID int64  `json:"seatId"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Конвертеры

// FromDomainBookingDetails конвертирует domain.BookingDetails в BookingResponse
func FromDomainBookingDetails(b *domain.BookingDetails) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		UserName:   b.UserName,
		UserEmail:  b.UserEmail,
		Batch:      string(b.UserBatch),
		SeatID:     b.SeatID,
		SeatNumber: b.SeatNumber,
		SeatClass:  string(b.SeatClass),
		Date:       b.Date.Format(domain.DateFormat),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список броней
func FromDomainBookingList(bookings []*domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBookingDetails(b))
	}
	return resp
}
