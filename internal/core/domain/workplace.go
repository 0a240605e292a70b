package domain

import "time"

// Workplace is a tenant scope: one manager, many employees, one shift board
// per week. The business name is globally unique and the manager reference is
// set once at creation.
type Workplace struct {
	WorkplaceID  string    `json:"workplaceID"`
	BusinessName string    `json:"businessName"`
	ManagerID    string    `json:"managerID"` // FK -> users.user_id
	CreatedAt    time.Time `json:"createdAt"`
}

// Invite gates manager onboarding. A code transitions used=false -> true at
// most once, inside a successful workplace-creation sequence.
type Invite struct {
	Code      string    `json:"code"`
	IsUsed    bool      `json:"isUsed"`
	CreatedAt time.Time `json:"createdAt"`
}
