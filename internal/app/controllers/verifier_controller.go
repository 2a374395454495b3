package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/services"
	"github.com/certichain/certichain/internal/middleware"
	"github.com/certichain/certichain/internal/pkg/apperrors"
)

// VerifierController handles certificate verification HTTP requests
type VerifierController struct {
	verifyService *services.VerifyService
}

// NewVerifierController creates a new verifier controller instance
func NewVerifierController(verifyService *services.VerifyService) *VerifierController {
	return &VerifierController{
		verifyService: verifyService,
	}
}

// VerifyHash godoc
// @Summary Verify a certificate hash
// @Description Checks the registry contract for the hash and cross-references off-chain metadata
// @Tags verifier
// @Accept json
// @Produce json
// @Param request body dto.VerifyHashRequest true "Certificate hash to verify"
// @Success 200 {object} dto.StructuredResponse{data=dto.VerifyHashResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /verifier/verify-hash [post]
func (c *VerifierController) VerifyHash(ctx *gin.Context) {
	var req dto.VerifyHashRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("certificateHash is required"))
		return
	}

	result, err := c.verifyService.VerifyHash(ctx, req.CertificateHash)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Certificate hash verified against the registry"
	if result.Status == services.StatusInvalid {
		message = "Certificate hash is not registered as valid"
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, message))
}
