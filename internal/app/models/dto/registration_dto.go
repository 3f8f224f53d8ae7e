package dto

import "github.com/nsounjou2-stack/inscription-concours/internal/app/models"

// CreateRegistrationRequest is the wire shape submitted by the form wizard.
// Dates travel as "2006-01-02" strings; semantic validation (age range, date
// ordering, reference-table membership) happens in the validation pipeline,
// binding tags only guarantee structural completeness.
type CreateRegistrationRequest struct {
	FirstName  string `json:"firstName" binding:"required" example:"Amina"`
	LastName   string `json:"lastName" binding:"required" example:"Ngo Bell"`
	BirthDate  string `json:"birthDate" binding:"required" example:"2004-03-12"`
	BirthPlace string `json:"birthPlace" binding:"required" example:"Douala"`
	Gender     string `json:"gender" binding:"required,oneof=M F" example:"F"`
	Phone      string `json:"phone" binding:"required" example:"+237 690 112 233"`
	Email      string `json:"email" binding:"required,email" example:"amina@example.cm"`
	City       string `json:"city" binding:"required" example:"Yaoundé"`
	Department string `json:"department" binding:"required" example:"Mfoundi"`
	Region     string `json:"region" binding:"required" example:"Centre"`
	Country    string `json:"country" example:"Cameroun"`

	BacDate    string  `json:"bacDate" binding:"required" example:"2022-07-01"`
	BacSeries  string  `json:"bacSeries" binding:"required" example:"C"`
	BacMention string  `json:"bacMention" binding:"required" example:"Bien"`
	BacType    string  `json:"bacType" binding:"required" example:"Général"`
	BacFileURL *string `json:"bacFileUrl,omitempty"`

	ProbDate    string  `json:"probDate" binding:"required" example:"2021-07-01"`
	ProbSeries  string  `json:"probSeries" binding:"required" example:"C"`
	ProbMention string  `json:"probMention" binding:"required" example:"Assez Bien"`
	ProbType    string  `json:"probType" binding:"required" example:"Général"`
	ProbFileURL *string `json:"probFileUrl,omitempty"`

	FatherName       string  `json:"fatherName" binding:"required" example:"Jean Mbarga"`
	FatherProfession *string `json:"fatherProfession,omitempty"`
	FatherPhone      *string `json:"fatherPhone,omitempty"`
	MotherName       string  `json:"motherName" binding:"required" example:"Claire Mbarga"`
	MotherProfession *string `json:"motherProfession,omitempty"`
	MotherPhone      *string `json:"motherPhone,omitempty"`
	GuardianName     *string `json:"guardianName,omitempty"`
	GuardianRelation *string `json:"guardianRelation,omitempty"`
	GuardianPhone    *string `json:"guardianPhone,omitempty"`

	PhotoURL string `json:"photoUrl" binding:"required" example:"http://localhost:8080/uploads/photos/3f2a.jpg"`
}

// CreateRegistrationResponse returns the identifiers assigned at creation.
type CreateRegistrationResponse struct {
	ID                 int64  `json:"id" example:"42"`
	RegistrationNumber string `json:"registrationNumber" example:"REG202600042"`
}

// UpdateRegistrationRequest is the partial admin-edit shape. Only non-nil
// fields are applied; unknown JSON keys are ignored by decoding. Payment
// fields are deliberately absent, they go through the payment endpoint.
type UpdateRegistrationRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	BirthDate  *string `json:"birthDate,omitempty"`
	BirthPlace *string `json:"birthPlace,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	City       *string `json:"city,omitempty"`
	Department *string `json:"department,omitempty"`
	Region     *string `json:"region,omitempty"`
	Country    *string `json:"country,omitempty"`

	BacDate    *string `json:"bacDate,omitempty"`
	BacSeries  *string `json:"bacSeries,omitempty"`
	BacMention *string `json:"bacMention,omitempty"`
	BacType    *string `json:"bacType,omitempty"`

	ProbDate    *string `json:"probDate,omitempty"`
	ProbSeries  *string `json:"probSeries,omitempty"`
	ProbMention *string `json:"probMention,omitempty"`
	ProbType    *string `json:"probType,omitempty"`

	FatherName       *string `json:"fatherName,omitempty"`
	FatherProfession *string `json:"fatherProfession,omitempty"`
	FatherPhone      *string `json:"fatherPhone,omitempty"`
	MotherName       *string `json:"motherName,omitempty"`
	MotherProfession *string `json:"motherProfession,omitempty"`
	MotherPhone      *string `json:"motherPhone,omitempty"`
	GuardianName     *string `json:"guardianName,omitempty"`
	GuardianRelation *string `json:"guardianRelation,omitempty"`
	GuardianPhone    *string `json:"guardianPhone,omitempty"`

	PhotoURL *string `json:"photoUrl,omitempty"`
}

// UpdatePaymentRequest carries an explicit payment-status transition.
type UpdatePaymentRequest struct {
	PaymentStatus    string  `json:"paymentStatus" binding:"required,oneof=pending completed failed refunded" example:"completed"`
	PaymentReference *string `json:"paymentReference,omitempty" example:"PAY-8fa3c1"`
	PaymentAmount    *int64  `json:"paymentAmount,omitempty" example:"25000"`
	PaymentDate      *string `json:"paymentDate,omitempty" example:"2026-02-10T12:00:00Z"`
}

// BulkPaymentRequest applies one status transition to several registrations.
type BulkPaymentRequest struct {
	IDs           []int64 `json:"ids" binding:"required,min=1"`
	PaymentStatus string  `json:"paymentStatus" binding:"required,oneof=pending completed failed refunded" example:"completed"`
	PaymentDate   *string `json:"paymentDate,omitempty"`
}

// RegistrationListResponse is the paginated dashboard listing.
type RegistrationListResponse struct {
	Data       []models.Registration `json:"data"`
	Pagination PaginationInfo        `json:"pagination"`
}

// ListFilter collects the recognized list query parameters.
type ListFilter struct {
	Search        string
	PaymentStatus string
	Region        string
}
