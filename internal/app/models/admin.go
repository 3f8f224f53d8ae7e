package models

import "time"

// Admin defines a dashboard administrator account based on the 'admins'
// table. Registrations themselves carry no account; only administrators
// authenticate.
type Admin struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"admin@concours.cm"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName    string     `json:"fullName" db:"full_name" example:"Marie Atangana"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
