package models

import "time"

// ContestSettings holds the single-row global configuration of the contest
// edition: when and where it takes place and the registration fee applied to
// payments that omit an explicit amount.
type ContestSettings struct {
	ID              int64      `json:"id" db:"id"`
	ContestDate     *time.Time `json:"contestDate,omitempty" db:"contest_date"`
	ContestLocation *string    `json:"contestLocation,omitempty" db:"contest_location"`
	RegistrationFee int64      `json:"registrationFee" db:"registration_fee" example:"25000"` // FCFA
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}
