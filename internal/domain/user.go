package domain

import (
	"fmt"
	"strings"
)

// Batch rotation cohort of a user
type Batch string

const (
	BatchA Batch = "A"
	BatchB Batch = "B"
)

// ParseBatch parses a batch; BATCH_1 and BATCH_2 map to A and B
func ParseBatch(s string) (Batch, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "BATCH_1":
		return BatchA, nil
	case "B", "BATCH_2":
		return BatchB, nil
	default:
		return "", fmt.Errorf("%w: batch %q", ErrInvalidEnum, s)
	}
}

// Role access role of a user
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole parses a role
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: role %q", ErrInvalidEnum, s)
	}
}

// User represents an employee
type User struct {
	ID      int64
	Name    string
	Email   string
	Batch   Batch
	SquadID *int64
	Role    Role
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
