package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/filestorage"
)

// Upload size cap in bytes. Photos and scanned diplomas are small; anything
// bigger is a mistake or abuse.
const maxUploadSize = 5 << 20

// Photos must be images; diploma scans may also arrive as PDFs.
var (
	photoExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	diplomaExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".pdf":  true,
	}
)

// UploadController handles candidate file uploads
type UploadController struct {
	storage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// UploadPhoto stores a candidate photo
// @Summary Upload a candidate photo
// @Description Stores the uploaded image and returns the URL to reference in the registration
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo file (jpg, jpeg, png)"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "File stored"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads/photos [post]
func (c *UploadController) UploadPhoto(ctx *gin.Context) {
	c.handleUpload(ctx, "photos", photoExtensions, "Allowed extensions: jpg, jpeg, png")
}

// UploadDiploma stores a scanned diploma
// @Summary Upload a diploma scan
// @Description Stores the uploaded document and returns the URL to reference in the registration
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file (jpg, jpeg, png, pdf)"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "File stored"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads/diplomas [post]
func (c *UploadController) UploadDiploma(ctx *gin.Context) {
	c.handleUpload(ctx, "diplomas", diplomaExtensions, "Allowed extensions: jpg, jpeg, png, pdf")
}

func (c *UploadController) handleUpload(ctx *gin.Context, subPath string, allowed map[string]bool, allowedNote string) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file provided").
			WithDetails("The request must contain a 'file' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > maxUploadSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File too large").
			WithDetails("Files are limited to 5 MB")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowed[ext] {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported file type").
			WithDetails(allowedNote)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.SaveFileWithPath(fileHeader, subPath)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to store file")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.UploadResponse{URL: url}, "File stored"))
}
