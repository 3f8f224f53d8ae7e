package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/services"
	"github.com/nsounjou2-stack/inscription-concours/internal/middleware"
)

// SettingsController handles contest settings endpoints
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetSettings returns the contest configuration
// @Summary Get contest settings
// @Description Returns the contest date, location and registration fee
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ContestSettingsResponse} "Settings retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contest-settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, ""))
}

// UpdateSettings applies a partial settings update
// @Summary Update contest settings
// @Description Updates the provided settings fields and returns the new state
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateContestSettingsRequest true "Settings fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ContestSettingsResponse} "Settings updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid settings data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contest-settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateContestSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settings data")
		errorDetail = errorDetail.WithDetails(dto.FormatBindingError(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings, err := c.settingsService.UpdateSettings(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, "Settings updated successfully"))
}
