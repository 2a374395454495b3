package repositories

import (
	"context"

	"github.com/certichain/certichain/internal/app/models"
)

// Store is the uniform contract over the student/certificate backends. Two
// implementations exist: PostgresStore (primary) and FileStore (JSON mirror).
// DualStore combines them with the write-both / read-fallback policy.
type Store interface {
	// CreateStudent inserts a new student record. Returns
	// apperrors.ErrRollNumberExists if the roll number is already taken in
	// this backend.
	CreateStudent(ctx context.Context, student *models.Student) error

	// GetStudent returns the student without certificates, or
	// apperrors.ErrStudentNotFound.
	GetStudent(ctx context.Context, rollNumber string) (*models.Student, error)

	// AppendCertificate attaches an issued certificate to a student. Returns
	// apperrors.ErrStudentNotFound if the student does not exist in this
	// backend.
	AppendCertificate(ctx context.Context, rollNumber string, cert *models.Certificate) error

	// ListCertificates returns the student's certificates newest first.
	// Returns apperrors.ErrStudentNotFound if the student does not exist.
	ListCertificates(ctx context.Context, rollNumber string) ([]models.Certificate, error)

	// FindCertificateByHash returns the certificate with the given content
	// hash plus the owning student's display name, or
	// apperrors.ErrCertificateNotFound.
	FindCertificateByHash(ctx context.Context, hash string) (*models.Certificate, string, error)

	// ListAllStudents returns every student with nested certificates.
	ListAllStudents(ctx context.Context) ([]*models.Student, error)
}
