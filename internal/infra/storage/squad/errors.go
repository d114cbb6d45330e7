package squad

import "errors"

var (
	// ErrSquadNotFound возвращается, когда отряд не найден
	ErrSquadNotFound = errors.New("squad.repository: squad not found")

	// ErrNameTaken возвращается при нарушении уникальности имени
	ErrNameTaken = errors.New("squad.repository: squad name already exists")

	ErrBuildQuery = errors.New("squad.repository: failed to build query")
	ErrExecQuery  = errors.New("squad.repository: failed to execute query")
	ErrScanRow    = errors.New("squad.repository: failed to scan row")
)
