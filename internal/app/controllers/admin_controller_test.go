package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/certichain/certichain/internal/app/controllers"
	"github.com/certichain/certichain/internal/app/repositories"
	"github.com/certichain/certichain/internal/app/routes"
	"github.com/certichain/certichain/internal/app/services"
	"github.com/certichain/certichain/internal/chain"
	"github.com/certichain/certichain/internal/pkg/filestorage"
)

// stubRegistry always confirms issuance and reports every hash as unissued.
type stubRegistry struct{}

func (stubRegistry) IssueCertificate(_ context.Context, _, _ string) (string, error) {
	return "0xtx", nil
}

func (stubRegistry) GetCertificateDetails(_ context.Context, _ string) (*chain.CertificateDetails, error) {
	return &chain.CertificateDetails{Issuer: chain.ZeroAddress}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repositories.NewFileStore(filepath.Join(t.TempDir(), "student_db.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	studentService := services.NewStudentService(store)
	certificateService := services.NewCertificateService(store, stubRegistry{}, storage)
	verifyService := services.NewVerifyService(store, stubRegistry{})

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAdminController(studentService, certificateService, storage),
		controllers.NewStudentController(studentService),
		controllers.NewVerifierController(verifyService),
	)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateStudentAccountRespondsOK(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/admin/create-student-account", map[string]string{
		"rollNumber":  "R100",
		"mailId":      "asha@school.edu",
		"password":    "pw123",
		"studentName": "Asha",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateStudentAccountDuplicateConflicts(t *testing.T) {
	router := newTestRouter(t)
	body := map[string]string{
		"rollNumber":  "R100",
		"mailId":      "asha@school.edu",
		"password":    "pw123",
		"studentName": "Asha",
	}

	if rec := postJSON(t, router, "/api/admin/create-student-account", body); rec.Code != http.StatusOK {
		t.Fatalf("first create: status = %d", rec.Code)
	}
	if rec := postJSON(t, router, "/api/admin/create-student-account", body); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestCreateStudentAccountMissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/admin/create-student-account", map[string]string{
		"rollNumber": "R100",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestIssueCertificateRespondsOK(t *testing.T) {
	router := newTestRouter(t)

	if rec := postJSON(t, router, "/api/admin/create-student-account", map[string]string{
		"rollNumber":  "R100",
		"mailId":      "asha@school.edu",
		"password":    "pw123",
		"studentName": "Asha",
	}); rec.Code != http.StatusOK {
		t.Fatalf("create student: status = %d", rec.Code)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("studentId", "R100"); err != nil {
		t.Fatalf("write studentId: %v", err)
	}
	pdf, err := writer.CreateFormFile("pdfFile", "cert.pdf")
	if err != nil {
		t.Fatalf("create pdfFile part: %v", err)
	}
	if _, err := pdf.Write([]byte("%PDF-1.4 fake certificate")); err != nil {
		t.Fatalf("write pdf content: %v", err)
	}
	photo, err := writer.CreateFormFile("studentPhoto", "photo.jpg")
	if err != nil {
		t.Fatalf("create studentPhoto part: %v", err)
	}
	if _, err := photo.Write([]byte("jpeg")); err != nil {
		t.Fatalf("write photo content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/issue-certificate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"txHash":"0xtx"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestIssueCertificateMissingUpload(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("studentId", "R100"); err != nil {
		t.Fatalf("write studentId: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/issue-certificate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
