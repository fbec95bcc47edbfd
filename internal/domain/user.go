package domain

import "time"

// Role is the set of actors the marketplace knows about.
type Role string

const (
	RoleDonor Role = "DONOR" // posts donations
	RoleNGO   Role = "NGO"   // claims lots
	RoleAdmin Role = "ADMIN" // full visibility
)

// RegistrableRoles are the roles a user may pick at signup.
// ADMIN accounts are provisioned out of band.
var RegistrableRoles = []Role{RoleDonor, RoleNGO}

type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
