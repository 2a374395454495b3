package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/repositories"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/auth"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// StudentService handles student accounts: creation, login and retrieval.
type StudentService struct {
	store repositories.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(store repositories.Store) *StudentService {
	return &StudentService{
		store: store,
	}
}

// CreateStudent registers a new student account. The plaintext credential is
// bcrypt-hashed before anything touches a store.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		RollNumber:     req.RollNumber,
		MailID:         req.MailID,
		HashedPassword: hashedPassword,
		StudentName:    req.StudentName,
		StudentClass:   req.StudentClass,
		Department:     req.Department,
		YearOfPass:     req.YearOfPass,
		Percentage:     req.Percentage,
	}

	if err := s.store.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRollNumberExists) {
			return apperrors.ErrRollNumberExists
		}
		return fmt.Errorf("error creating student account: %w", err)
	}

	logger.Info().Str("rollNumber", req.RollNumber).Msg("Student account created")
	return nil
}

// Login verifies a roll number and plaintext credential against the stored
// hash. No session token is issued; the caller keeps its own state.
func (s *StudentService) Login(ctx context.Context, rollNumber, password string) (*dto.LoginResponse, error) {
	student, err := s.store.GetStudent(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if !auth.CheckPassword(student.HashedPassword, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		RollNumber:  student.RollNumber,
		StudentName: student.StudentName,
	}, nil
}

// GetStudentCertificates returns the student's profile with their
// certificates, newest first.
func (s *StudentService) GetStudentCertificates(ctx context.Context, rollNumber string) (*dto.StudentCertificatesResponse, error) {
	student, err := s.store.GetStudent(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	certs, err := s.store.ListCertificates(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving certificates: %w", err)
	}

	response := &dto.StudentCertificatesResponse{
		Profile: &dto.StudentProfile{
			RollNumber: student.RollNumber,
			Name:       student.StudentName,
			MailID:     student.MailID,
			Class:      student.StudentClass,
			Department: student.Department,
			YearOfPass: student.YearOfPass,
			Percentage: student.Percentage,
		},
		Certificates: make([]dto.CertificateResponse, 0, len(certs)),
	}

	for _, cert := range certs {
		response.Certificates = append(response.Certificates, dto.CertificateResponse{
			ID:               cert.CertificateHash,
			Name:             student.StudentName,
			PDFDownloadURL:   cert.PDFFilePath,
			PhotoFilePath:    cert.PhotoFilePath,
			QRCodePath:       cert.QRCodePath,
			BlockchainTxHash: cert.BlockchainTxHash,
			IssueTimestamp:   cert.IssueTimestamp,
			Department:       student.Department,
			YearOfPass:       student.YearOfPass,
			StudentClass:     student.StudentClass,
			Percentage:       student.Percentage,
		})
	}

	return response, nil
}

// GetAllRecords returns every student with nested certificates. Credential
// hashes never serialize (see models.Student).
func (s *StudentService) GetAllRecords(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.ListAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}
