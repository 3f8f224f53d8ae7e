package dto

import "github.com/nsounjou2-stack/inscription-concours/internal/app/models"

// ContestSettingsResponse is the stored contest configuration together with
// the deployment-level contest identity (name, fee currency) from config.
type ContestSettingsResponse struct {
	models.ContestSettings
	ContestName string `json:"contestName" example:"Concours d'entrée"`
	Currency    string `json:"currency" example:"FCFA"`
}

// UpdateContestSettingsRequest updates the single-row contest configuration.
// Only non-nil fields are applied.
type UpdateContestSettingsRequest struct {
	ContestDate     *string `json:"contestDate,omitempty" example:"2026-06-15"`
	ContestLocation *string `json:"contestLocation,omitempty" example:"Campus de Ngoa-Ekellé, Yaoundé"`
	RegistrationFee *int64  `json:"registrationFee,omitempty" example:"25000"`
}

// UploadResponse returns the URL under which an uploaded file is reachable.
type UploadResponse struct {
	URL string `json:"url" example:"http://localhost:8080/uploads/photos/3f2a.jpg"`
}
