package models

import (
	"time"
)

// PaymentStatus represents the payment state of a registration.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// IsValid reports whether s is one of the four known payment statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Gender represents the candidate's declared gender.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// AcademicResult holds one examination sub-record (BAC or probatoire).
type AcademicResult struct {
	Date    time.Time `json:"date" db:"date" example:"2019-07-01T00:00:00Z"` // Examination date, strictly in the past
	Series  string    `json:"series" db:"series" example:"C"`                // Series code, constrained by Type
	Mention string    `json:"mention" db:"mention" example:"Bien"`           // Honors band
	Type    string    `json:"type" db:"type" example:"Général"`              // Examination track (Général or Technique)
	FileURL *string   `json:"fileUrl,omitempty" db:"file_url"`               // Optional uploaded diploma reference
}

// ParentInfo holds the contact information of one parent.
type ParentInfo struct {
	Name       string  `json:"name" db:"name" example:"Jean Mbarga"`
	Profession *string `json:"profession,omitempty" db:"profession"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
}

// GuardianInfo holds the optional legal guardian group. Any subset of the
// fields may be present.
type GuardianInfo struct {
	Name     *string `json:"name,omitempty" db:"name"`
	Relation *string `json:"relation,omitempty" db:"relation"`
	Phone    *string `json:"phone,omitempty" db:"phone"`
}

// Registration is the sole persisted entity: one candidate's contest
// registration, flattened to a single row of the 'registrations' table.
type Registration struct {
	ID                 int64          `json:"id" db:"id" example:"1"`
	RegistrationNumber string         `json:"registrationNumber" db:"registration_number" example:"REG202600042"` // Human-facing code, REG<year><5 digits>
	FirstName          string         `json:"firstName" db:"first_name" example:"Amina"`
	LastName           string         `json:"lastName" db:"last_name" example:"Ngo Bell"`
	BirthDate          time.Time      `json:"birthDate" db:"birth_date" example:"2004-03-12T00:00:00Z"`
	BirthPlace         string         `json:"birthPlace" db:"birth_place" example:"Douala"`
	Gender             Gender         `json:"gender" db:"gender" example:"F"`
	Phone              string         `json:"phone" db:"phone" example:"+237 690 112 233"`
	Email              string         `json:"email" db:"email" example:"amina@example.cm"`
	City               string         `json:"city" db:"city" example:"Yaoundé"`
	Department         string         `json:"department" db:"department" example:"Mfoundi"`
	Region             string         `json:"region" db:"region" example:"Centre"`
	Country            string         `json:"country" db:"country" example:"Cameroun"`
	Bac                AcademicResult `json:"bac"`
	Prob               AcademicResult `json:"prob"`
	Father             ParentInfo     `json:"father"`
	Mother             ParentInfo     `json:"mother"`
	Guardian           GuardianInfo   `json:"guardian"`
	PhotoURL           string         `json:"photoUrl" db:"photo_url"`
	PaymentStatus      PaymentStatus  `json:"paymentStatus" db:"payment_status" example:"pending"`
	PaymentReference   *string        `json:"paymentReference,omitempty" db:"payment_reference"`
	PaymentAmount      *int64         `json:"paymentAmount,omitempty" db:"payment_amount"` // FCFA
	PaymentDate        *time.Time     `json:"paymentDate,omitempty" db:"payment_date"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`
}

// RegistrationStats is the aggregate view served to the dashboard.
type RegistrationStats struct {
	Total                int64 `json:"totalRegistrations"`
	CompletedPayments    int64 `json:"completedPayments"`
	PendingPayments      int64 `json:"pendingPayments"`
	FailedPayments       int64 `json:"failedPayments"`
	MaleCount            int64 `json:"maleCount"`
	FemaleCount          int64 `json:"femaleCount"`
	TotalAmountCollected int64 `json:"totalCollected"` // FCFA, completed payments only
}
