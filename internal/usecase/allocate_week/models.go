package allocate_week

import "time"

// Request запрос распределения мест по отрядам на неделю
// Date - любой день недели; пустая дата означает текущую неделю
type Request struct {
	CallerID int64
	Date     time.Time
}

// SquadAllocation места, закрепленные за отрядом
type SquadAllocation struct {
	AllocationID int64
	SquadID      int64
	SquadName    string
	SeatIDs      []int64
	SeatNumbers  []int
}

// Response результат распределения
type Response struct {
	Week          int
	Year          int
	SeatsPerSquad int
	Unassigned    []int
	Allocations   []SquadAllocation
}
