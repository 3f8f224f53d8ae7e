package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/services"
	"github.com/nsounjou2-stack/inscription-concours/internal/middleware"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/helpers"
)

// RegistrationController handles registration-related operations
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration ID").
			WithDetails("Registration ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateRegistration handles a candidate's registration submission
// @Summary Submit a registration
// @Description Validates and stores a new contest registration, assigning a registration number
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.CreateRegistrationRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateRegistrationResponse} "Registration created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid or incomplete registration data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(dto.FormatBindingError(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reg, verrs, err := c.registrationService.CreateRegistration(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if verrs != nil {
		middleware.HandleValidationErrors(ctx, verrs)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CreateRegistrationResponse{
		ID:                 reg.ID,
		RegistrationNumber: reg.RegistrationNumber,
	}, "Registration created successfully"))
}

// GetRegistrationByID retrieves a registration by ID
// @Summary Get registration details
// @Description Retrieves one registration with all its fields
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Registration retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration ID format"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistrationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reg, err := c.registrationService.GetRegistration(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reg, ""))
}

// ListRegistrations retrieves registrations with filtering and pagination
// @Summary List registrations
// @Description Retrieves a paginated list of registrations, newest first
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Param search query string false "Match against name, registration number or email"
// @Param paymentStatus query string false "Filter by payment status" Enums(pending, completed, failed, refunded)
// @Param region query string false "Filter by region"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationListResponse} "Registrations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	filter := dto.ListFilter{
		Search:        ctx.Query("search"),
		PaymentStatus: ctx.Query("paymentStatus"),
		Region:        ctx.Query("region"),
	}

	list, err := c.registrationService.ListRegistrations(ctx, filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list, ""))
}

// SearchRegistrations performs the dashboard quick search
// @Summary Search registrations
// @Description Matches the term against names, registration number, email and phone (max 50 results)
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Matching registrations"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/search [get]
func (c *RegistrationController) SearchRegistrations(ctx *gin.Context) {
	results, err := c.registrationService.SearchRegistrations(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results, ""))
}

// GetStats returns the dashboard aggregates
// @Summary Registration statistics
// @Description Returns totals by payment status, gender and the amount collected
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.RegistrationStats} "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/stats [get]
func (c *RegistrationController) GetStats(ctx *gin.Context) {
	stats, err := c.registrationService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// UpdateRegistration applies a partial admin edit
// @Summary Update a registration
// @Description Applies the provided fields; the merged record must still pass full validation
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Registration updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid update data or no fields to update"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [put]
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update data")
		errorDetail = errorDetail.WithDetails(dto.FormatBindingError(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reg, verrs, err := c.registrationService.UpdateRegistration(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if verrs != nil {
		middleware.HandleValidationErrors(ctx, verrs)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reg, "Registration updated successfully"))
}

// UpdatePayment applies a payment-status transition
// @Summary Update payment status
// @Description Records a payment transition, defaulting amount and date when a payment completes
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID" Format(int64) minimum(1)
// @Param request body dto.UpdatePaymentRequest true "Payment transition"
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Payment status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id}/payment [put]
func (c *RegistrationController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(dto.FormatBindingError(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reg, err := c.registrationService.UpdatePayment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reg, "Payment status updated"))
}

// BulkUpdatePayment applies one payment transition to several registrations
// @Summary Bulk payment update
// @Description Applies the same payment status to every listed registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkPaymentRequest true "IDs and target status"
// @Success 200 {object} dto.APIResponse "Number of registrations updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid bulk payment data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/bulk-payment [put]
func (c *RegistrationController) BulkUpdatePayment(ctx *gin.Context) {
	var req dto.BulkPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid bulk payment data")
		errorDetail = errorDetail.WithDetails(dto.FormatBindingError(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.registrationService.BulkUpdatePayment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"updated": updated}, "Payment status updated"))
}

// DeleteRegistration removes a registration
// @Summary Delete a registration
// @Description Permanently deletes a registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Registration deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Registration deleted"))
}
