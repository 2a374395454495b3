package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/services"
	"github.com/certichain/certichain/internal/middleware"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/filestorage"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// AdminController handles admin HTTP requests
type AdminController struct {
	studentService     *services.StudentService
	certificateService *services.CertificateService
	storage            *filestorage.LocalStorage
}

// NewAdminController creates a new admin controller instance
func NewAdminController(studentService *services.StudentService, certificateService *services.CertificateService, storage *filestorage.LocalStorage) *AdminController {
	return &AdminController{
		studentService:     studentService,
		certificateService: certificateService,
		storage:            storage,
	}
}

// CreateStudentAccount godoc
// @Summary Create a student account
// @Description Registers a new student with a bcrypt-hashed credential
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student account details"
// @Success 200 {object} dto.StructuredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/create-student-account [post]
func (c *AdminController) CreateStudentAccount(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(
			"rollNumber, mailId, password and studentName are required"))
		return
	}

	if err := c.studentService.CreateStudent(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(
		gin.H{"rollNumber": req.RollNumber},
		"Student account created successfully"))
}

// IssueCertificate godoc
// @Summary Issue a certificate
// @Description Hashes the uploaded PDF, registers the hash on chain, generates a QR code and persists the record
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param studentId formData string true "Roll number of the student"
// @Param pdfFile formData file true "Certificate PDF"
// @Param studentPhoto formData file true "Student photo"
// @Success 200 {object} dto.StructuredResponse{data=dto.IssueCertificateResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/issue-certificate [post]
func (c *AdminController) IssueCertificate(ctx *gin.Context) {
	studentID := ctx.PostForm("studentId")
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentId is required").
				WithField("studentId")))
		return
	}

	pdfFile, err := ctx.FormFile("pdfFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "pdfFile upload is required").
				WithField("pdfFile")))
		return
	}

	photoFile, err := ctx.FormFile("studentPhoto")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentPhoto upload is required").
				WithField("studentPhoto")))
		return
	}

	pdfPath, err := c.storage.SaveUpload(pdfFile, filestorage.SubdirCertificates)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to store uploaded certificate PDF")
		middleware.HandleAPIError(ctx, err)
		return
	}

	photoPath, err := c.storage.SaveUpload(photoFile, filestorage.SubdirPhotos)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to store uploaded student photo")
		if delErr := c.storage.DeleteFile(pdfPath); delErr != nil {
			logger.Error().Err(delErr).Str("path", pdfPath).Msg("Failed to clean up stored PDF")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.certificateService.IssueCertificate(ctx, studentID, pdfPath, photoPath)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result,
		"Certificate issued and blockchain transaction confirmed!"))
}

// GetAllRecords godoc
// @Summary List all student records
// @Description Returns every student with their certificates, credential hashes excluded
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StructuredResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/all-records [get]
func (c *AdminController) GetAllRecords(ctx *gin.Context) {
	students, err := c.studentService.GetAllRecords(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(students, "Records retrieved successfully"))
}
