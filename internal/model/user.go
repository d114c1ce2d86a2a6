// File: internal/model/user.go
package model

import "time"

// Role is the coarse permission tier of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID             int        `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	Email          string     `db:"email" json:"email"`
	FullName       *string    `db:"full_name" json:"full_name"`
	Role           Role       `db:"role" json:"role"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
