package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/dberrors"
)

// PostgresStore is the primary relational backend.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed store
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// CreateStudent inserts a new student row
func (s *PostgresStore) CreateStudent(ctx context.Context, student *models.Student) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`,
		student.RollNumber).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if exists {
		return apperrors.ErrRollNumberExists
	}

	query := `
		INSERT INTO students (roll_number, mail_id, hashed_password, student_name, student_class, department, year_of_pass, percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = s.db.Exec(ctx, query,
		student.RollNumber,
		student.MailID,
		student.HashedPassword,
		student.StudentName,
		student.StudentClass,
		student.Department,
		student.YearOfPass,
		student.Percentage,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRollNumberExists
		}
		return fmt.Errorf("error inserting student: %w", err)
	}

	return nil
}

// GetStudent retrieves a student by roll number (certificates not included)
func (s *PostgresStore) GetStudent(ctx context.Context, rollNumber string) (*models.Student, error) {
	query := `
		SELECT roll_number, mail_id, hashed_password, student_name, student_class, department, year_of_pass, percentage
		FROM students
		WHERE roll_number = $1
	`

	var student models.Student
	err := s.db.QueryRow(ctx, query, rollNumber).Scan(
		&student.RollNumber,
		&student.MailID,
		&student.HashedPassword,
		&student.StudentName,
		&student.StudentClass,
		&student.Department,
		&student.YearOfPass,
		&student.Percentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// AppendCertificate inserts a certificate row owned by the student
func (s *PostgresStore) AppendCertificate(ctx context.Context, rollNumber string, cert *models.Certificate) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`,
		rollNumber).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	query := `
		INSERT INTO certificates (student_id, certificate_hash, pdf_file_path, photo_file_path, qr_code_path, blockchain_tx_hash, issue_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = s.db.Exec(ctx, query,
		rollNumber,
		cert.CertificateHash,
		cert.PDFFilePath,
		cert.PhotoFilePath,
		cert.QRCodePath,
		cert.BlockchainTxHash,
		cert.IssueTimestamp,
	)
	if err != nil {
		return fmt.Errorf("error inserting certificate: %w", err)
	}

	return nil
}

// ListCertificates returns the student's certificates newest first
func (s *PostgresStore) ListCertificates(ctx context.Context, rollNumber string) ([]models.Certificate, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`,
		rollNumber).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	query := `
		SELECT student_id, certificate_hash, pdf_file_path, photo_file_path, qr_code_path, blockchain_tx_hash, issue_timestamp
		FROM certificates
		WHERE student_id = $1
		ORDER BY issue_timestamp DESC
	`

	rows, err := s.db.Query(ctx, query, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("error retrieving certificates: %w", err)
	}
	defer rows.Close()

	var certs []models.Certificate
	for rows.Next() {
		var cert models.Certificate
		if err := rows.Scan(
			&cert.StudentID,
			&cert.CertificateHash,
			&cert.PDFFilePath,
			&cert.PhotoFilePath,
			&cert.QRCodePath,
			&cert.BlockchainTxHash,
			&cert.IssueTimestamp,
		); err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}

// FindCertificateByHash returns the certificate with the given hash joined
// with its owner's name
func (s *PostgresStore) FindCertificateByHash(ctx context.Context, hash string) (*models.Certificate, string, error) {
	query := `
		SELECT c.student_id, c.certificate_hash, c.pdf_file_path, c.photo_file_path, c.qr_code_path, c.blockchain_tx_hash, c.issue_timestamp,
		       COALESCE(s.student_name, '')
		FROM certificates c
		LEFT JOIN students s ON c.student_id = s.roll_number
		WHERE c.certificate_hash = $1
		LIMIT 1
	`

	var cert models.Certificate
	var studentName string
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&cert.StudentID,
		&cert.CertificateHash,
		&cert.PDFFilePath,
		&cert.PhotoFilePath,
		&cert.QRCodePath,
		&cert.BlockchainTxHash,
		&cert.IssueTimestamp,
		&studentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrCertificateNotFound
		}
		return nil, "", fmt.Errorf("error retrieving certificate: %w", err)
	}

	return &cert, studentName, nil
}

// ListAllStudents returns every student row with nested certificates
func (s *PostgresStore) ListAllStudents(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT roll_number, mail_id, hashed_password, student_name, student_class, department, year_of_pass, percentage
		FROM students
		ORDER BY roll_number
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.RollNumber,
			&student.MailID,
			&student.HashedPassword,
			&student.StudentName,
			&student.StudentClass,
			&student.Department,
			&student.YearOfPass,
			&student.Percentage,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, student := range students {
		certs, err := s.ListCertificates(ctx, student.RollNumber)
		if err != nil {
			return nil, err
		}
		if certs == nil {
			certs = []models.Certificate{}
		}
		student.Certificates = certs
	}

	return students, nil
}
