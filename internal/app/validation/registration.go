// Package validation implements the declarative rule set applied to a
// candidate registration before persistence. The same rules back the form
// wizard's inline checks; the server runs them atomically on submission.
package validation

import (
	"regexp"
	"time"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/refdata"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	// Contest age range, inclusive.
	MinAge = 14
	MaxAge = 30

	nameMinLength = 2
)

// phonePattern accepts Cameroonian numbers: optional +237 prefix, then three
// digit groups starting with 2, 3, 6 or 8 (e.g. "+237 690 112 233").
var phonePattern = regexp.MustCompile(`^(\+237\s?)?[2368]\d{2}(\s?\d{3}){2}$`)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsPhone reports whether s matches the regional phone-number pattern.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// AgeAt returns the full years elapsed between birth and now.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// ValidateRegistration checks a structurally complete create request against
// the field and cross-field rules and, when everything passes, returns the
// typed record ready for persistence. On failure it returns the field-scoped
// error list and a nil record. It is a pure function of its inputs and the
// static reference tables.
func ValidateRegistration(req *dto.CreateRegistrationRequest, now time.Time) (*models.Registration, *dto.ValidationErrors) {
	errs := dto.NewValidationErrors()

	if len([]rune(req.FirstName)) < nameMinLength {
		errs.AddError("firstName", "First name must contain at least 2 characters")
	}
	if len([]rune(req.LastName)) < nameMinLength {
		errs.AddError("lastName", "Last name must contain at least 2 characters")
	}
	if len([]rune(req.BirthPlace)) < nameMinLength {
		errs.AddError("birthPlace", "Place of birth is required")
	}
	if len([]rune(req.City)) < nameMinLength {
		errs.AddError("city", "City is required")
	}

	birthDate, err := time.Parse(DateLayout, req.BirthDate)
	if err != nil {
		errs.AddError("birthDate", "Birth date must be a valid date (YYYY-MM-DD)")
	} else if age := AgeAt(birthDate, now); age < MinAge || age > MaxAge {
		errs.AddError("birthDate", "Age must be between 14 and 30 years")
	}

	if req.Gender != string(models.GenderMale) && req.Gender != string(models.GenderFemale) {
		errs.AddError("gender", "Gender must be M or F")
	}

	if !IsPhone(req.Phone) {
		errs.AddError("phone", "Invalid Cameroonian phone number (e.g. +237 6XX XXX XXX)")
	}
	if !emailPattern.MatchString(req.Email) {
		errs.AddError("email", "Invalid email address")
	}

	if !refdata.IsRegion(req.Region) {
		errs.AddError("region", "Unknown region")
	} else if !refdata.IsDepartmentOf(req.Region, req.Department) {
		errs.AddError("department", "Department does not belong to the selected region")
	}

	bacDate := validateAcademic(errs, "bac", req.BacDate, req.BacSeries, req.BacMention, req.BacType, now)
	probDate := validateAcademic(errs, "prob", req.ProbDate, req.ProbSeries, req.ProbMention, req.ProbType, now)

	// The ordering rule runs only when both dates passed their own checks, so
	// each failure is reported once, on the most specific field.
	if bacDate != nil && probDate != nil && !probDate.Before(*bacDate) {
		errs.AddError("probDate", "Probatoire date must be before BAC date")
	}

	if len([]rune(req.FatherName)) < nameMinLength {
		errs.AddError("fatherName", "Father's name is required")
	}
	if len([]rune(req.MotherName)) < nameMinLength {
		errs.AddError("motherName", "Mother's name is required")
	}
	validateOptionalPhone(errs, "fatherPhone", req.FatherPhone)
	validateOptionalPhone(errs, "motherPhone", req.MotherPhone)
	// Guardian fields stay individually optional; only a present phone is
	// checked against the pattern.
	validateOptionalPhone(errs, "guardianPhone", req.GuardianPhone)

	if req.PhotoURL == "" {
		errs.AddError("photoUrl", "A candidate photo is required")
	}

	if errs.HasErrors() {
		return nil, errs
	}

	country := req.Country
	if country == "" {
		country = "Cameroun"
	}

	reg := &models.Registration{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  birthDate,
		BirthPlace: req.BirthPlace,
		Gender:     models.Gender(req.Gender),
		Phone:      req.Phone,
		Email:      req.Email,
		City:       req.City,
		Department: req.Department,
		Region:     req.Region,
		Country:    country,
		Bac: models.AcademicResult{
			Date:    *bacDate,
			Series:  req.BacSeries,
			Mention: req.BacMention,
			Type:    req.BacType,
			FileURL: req.BacFileURL,
		},
		Prob: models.AcademicResult{
			Date:    *probDate,
			Series:  req.ProbSeries,
			Mention: req.ProbMention,
			Type:    req.ProbType,
			FileURL: req.ProbFileURL,
		},
		Father: models.ParentInfo{
			Name:       req.FatherName,
			Profession: req.FatherProfession,
			Phone:      req.FatherPhone,
		},
		Mother: models.ParentInfo{
			Name:       req.MotherName,
			Profession: req.MotherProfession,
			Phone:      req.MotherPhone,
		},
		Guardian: models.GuardianInfo{
			Name:     req.GuardianName,
			Relation: req.GuardianRelation,
			Phone:    req.GuardianPhone,
		},
		PhotoURL:      req.PhotoURL,
		PaymentStatus: models.PaymentPending,
	}
	return reg, nil
}

// validateAcademic checks one examination sub-record and returns its parsed
// date when the date itself is valid, nil otherwise.
func validateAcademic(errs *dto.ValidationErrors, prefix, dateStr, series, mention, academicType string, now time.Time) *time.Time {
	var parsed *time.Time
	date, err := time.Parse(DateLayout, dateStr)
	switch {
	case err != nil:
		errs.AddError(prefix+"Date", "Date must be a valid date (YYYY-MM-DD)")
	case !date.Before(now):
		errs.AddError(prefix+"Date", "Date must be in the past")
	default:
		parsed = &date
	}

	if !refdata.IsAcademicType(academicType) {
		errs.AddError(prefix+"Type", "Type must be Général or Technique")
	} else if !refdata.IsSeriesOf(academicType, series) {
		errs.AddError(prefix+"Series", "Series is not valid for the selected type")
	}
	if !refdata.IsMention(mention) {
		errs.AddError(prefix+"Mention", "Unknown mention")
	}
	return parsed
}

func validateOptionalPhone(errs *dto.ValidationErrors, field string, phone *string) {
	if phone != nil && *phone != "" && !IsPhone(*phone) {
		errs.AddError(field, "Invalid phone number")
	}
}
