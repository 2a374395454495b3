package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/pkg/apperrors"
)

func createStudentRequest(roll string) *dto.CreateStudentRequest {
	year := 2025
	return &dto.CreateStudentRequest{
		RollNumber:  roll,
		MailID:      roll + "@school.edu",
		Password:    "pw123",
		StudentName: "Asha",
		Department:  "Computer Science",
		YearOfPass:  &year,
	}
}

func TestCreateStudentAndLogin(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)
	ctx := context.Background()

	if err := svc.CreateStudent(ctx, createStudentRequest("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	// Plaintext must never be stored
	stored, err := store.GetStudent(ctx, "R100")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if stored.HashedPassword == "pw123" || stored.HashedPassword == "" {
		t.Fatalf("credential not hashed: %q", stored.HashedPassword)
	}

	result, err := svc.Login(ctx, "R100", "pw123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.RollNumber != "R100" || result.StudentName != "Asha" {
		t.Errorf("unexpected login response: %+v", result)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)
	ctx := context.Background()

	if err := svc.CreateStudent(ctx, createStudentRequest("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	_, err := svc.Login(ctx, "R100", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownStudent(t *testing.T) {
	svc := NewStudentService(newTestStore(t))

	_, err := svc.Login(context.Background(), "ghost", "pw123")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestCreateStudentDuplicateRollNumber(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)
	ctx := context.Background()

	if err := svc.CreateStudent(ctx, createStudentRequest("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	err := svc.CreateStudent(ctx, createStudentRequest("R100"))
	if !errors.Is(err, apperrors.ErrRollNumberExists) {
		t.Fatalf("expected ErrRollNumberExists, got %v", err)
	}
}

func TestGetStudentCertificates(t *testing.T) {
	store := newTestStore(t)
	svc := NewStudentService(store)
	ctx := context.Background()

	if err := svc.CreateStudent(ctx, createStudentRequest("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	cert := &models.Certificate{
		StudentID:        "R100",
		CertificateHash:  "0xabc",
		PDFFilePath:      "/certificates/a.pdf",
		BlockchainTxHash: "0xtx",
		IssueTimestamp:   time.Now(),
	}
	if err := store.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}

	result, err := svc.GetStudentCertificates(ctx, "R100")
	if err != nil {
		t.Fatalf("GetStudentCertificates: %v", err)
	}
	if result.Profile == nil || result.Profile.RollNumber != "R100" {
		t.Fatalf("unexpected profile: %+v", result.Profile)
	}
	if len(result.Certificates) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(result.Certificates))
	}
	got := result.Certificates[0]
	if got.ID != "0xabc" || got.Name != "Asha" || got.BlockchainTxHash != "0xtx" {
		t.Errorf("unexpected certificate: %+v", got)
	}

	_, err = svc.GetStudentCertificates(ctx, "ghost")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestGetAllRecordsEmpty(t *testing.T) {
	svc := NewStudentService(newTestStore(t))

	students, err := svc.GetAllRecords(context.Background())
	if err != nil {
		t.Fatalf("GetAllRecords: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Errorf("expected empty non-nil slice, got %+v", students)
	}
}
