package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certichain/certichain/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	verifierController *controllers.VerifierController,
) {
	api := router.Group("/api")

	// --- Admin routes ---
	admin := api.Group("/admin")
	{
		admin.POST("/create-student-account", adminController.CreateStudentAccount)
		admin.POST("/issue-certificate", adminController.IssueCertificate)
		admin.GET("/all-records", adminController.GetAllRecords)
	}

	// --- Student routes ---
	student := api.Group("/student")
	{
		student.POST("/login", studentController.Login)
		student.GET("/certificates/:rollNumber", studentController.GetCertificates)
	}

	// --- Verifier routes ---
	verifier := api.Group("/verifier")
	{
		verifier.POST("/verify-hash", verifierController.VerifyHash)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
