package allocate_week

import "github.com/vinaywa/Seat-Booking-System/internal/domain"

// partition делит места поровну между отрядами: floor(seats/squads) на отряд
// Отряд i получает seats[i*n:(i+1)*n], остаток не закрепляется
func partition(squads []*domain.Squad, seats []*domain.Seat) (perSquad int, groups [][]*domain.Seat, rest []*domain.Seat) {
	if len(squads) == 0 {
		return 0, nil, seats
	}
	perSquad = len(seats) / len(squads)
	groups = make([][]*domain.Seat, len(squads))
	for i := range squads {
		groups[i] = seats[i*perSquad : (i+1)*perSquad]
	}
	return perSquad, groups, seats[len(squads)*perSquad:]
}
