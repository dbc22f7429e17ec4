package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperadmin UserRole = "superadmin"
)

// User is a staff account. The deployment is single-tenant: one admin
// plus an optional superadmin used for error correction.
type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifies who is performing an operation, as resolved by the
// auth layer. Services never look at credentials, only at this triple.
type Actor struct {
	UserId   uuid.UUID
	Username string
	Role     UserRole
}

// SystemActor is used for unauthenticated flows (public terms
// acceptance) so the audit trail still names a principal.
var SystemActor = Actor{Username: "system"}
