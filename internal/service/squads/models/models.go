package models

import (
	"errors"
	"strings"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// ErrEmptyName возвращается при пустом имени отряда
var ErrEmptyName = errors.New("squad name is required")

// Request модели

// CreateSquadRequest запрос на создание отряда
type CreateSquadRequest struct {
	Name  string `json:"name"`
	Batch string `json:"batch"` // A, B, BATCH_1, BATCH_2
}

// ToDomain проверяет запрос и конвертирует в domain.Squad
func (r *CreateSquadRequest) ToDomain() (*domain.Squad, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	batch, err := domain.ParseBatch(r.Batch)
	if err != nil {
		return nil, err
	}
	return &domain.Squad{Name: name, Batch: batch}, nil
}

// Response модели

// MemberResponse участник отряда
type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SquadResponse отряд с участниками
type SquadResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Batch   string           `json:"batch"`
	Members []MemberResponse `json:"members"`
}

// SquadListResponse список отрядов
type SquadListResponse struct {
	Squads []SquadResponse `json:"squads"`
	Total  int             `json:"total"`
}

// AllocatedSeat место в распределении
type AllocatedSeat struct {
	ID     int64  `json:"id"`
	Number int    `json:"seatNumber"`
	Class  string `json:"seatClass"`
}

// AllocationResponse места отряда на неделю
type AllocationResponse struct {
	SquadID   int64           `json:"squadId"`
	SquadName string          `json:"squadName"`
	Batch     string          `json:"batch"`
	Seats     []AllocatedSeat `json:"seats"`
}

// WeekAllocationsResponse распределения на ISO неделю
type WeekAllocationsResponse struct {
	Week        int                  `json:"week"`
	Year        int                  `json:"year"`
	Allocations []AllocationResponse `json:"allocations"`
}

// FromDomainSquad конвертирует отряд и его участников
func FromDomainSquad(sq *domain.Squad, members []*domain.User) SquadResponse {
	resp := SquadResponse{
		ID:      sq.ID,
		Name:    sq.Name,
		Batch:   string(sq.Batch),
		Members: make([]MemberResponse, 0, len(members)),
	}
	for _, u := range members {
		resp.Members = append(resp.Members, MemberResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
	return resp
}
