package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/services"
	"github.com/certichain/certichain/internal/middleware"
	"github.com/certichain/certichain/internal/pkg/apperrors"
)

// StudentController handles student HTTP requests
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller instance
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Login godoc
// @Summary Student login
// @Description Verifies a roll number and password. No session token is issued.
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.StructuredResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("rollNumber and password are required"))
		return
	}

	result, err := c.studentService.Login(ctx, req.RollNumber, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, "Login successful"))
}

// GetCertificates godoc
// @Summary List a student's certificates
// @Description Returns the student profile with certificates, newest first
// @Tags student
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Success 200 {object} dto.StructuredResponse{data=dto.StudentCertificatesResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/certificates/{rollNumber} [get]
func (c *StudentController) GetCertificates(ctx *gin.Context) {
	rollNumber := ctx.Param("rollNumber")

	result, err := c.studentService.GetStudentCertificates(ctx, rollNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, "Certificates retrieved successfully"))
}
