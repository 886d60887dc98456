package domain

import "time"

// Role of a back-office account. Storefront customers are anonymous and have
// no User record.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// User is a back-office account. Email is the identifier. An account is
// unusable until Approved is set by the owner.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PendingUpdate is a profile change an admin has requested, queued until the
// owner approves or rejects it.
type PendingUpdate struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	RequestedAt time.Time `json:"requestedAt"`
}
