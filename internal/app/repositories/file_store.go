package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// fileCertificate is the on-disk shape of one certificate entry.
type fileCertificate struct {
	CertificateHash  string `json:"certificateHash"`
	PDFFilePath      string `json:"pdfFilePath"`
	PhotoFilePath    string `json:"photoFilePath"`
	QRCodePath       string `json:"qrCodePath"`
	BlockchainTxHash string `json:"blockchainTxHash"`
	IssueTimestamp   string `json:"issueTimestamp"`
}

// fileStudent is the on-disk shape of one student entry, keyed by roll number
// in the top-level document. The credential hash lives here and must never
// leak into API responses.
type fileStudent struct {
	MailID         string            `json:"mailId"`
	HashedPassword string            `json:"hashedPassword"`
	StudentName    string            `json:"studentName"`
	StudentClass   string            `json:"studentClass,omitempty"`
	Department     string            `json:"department,omitempty"`
	YearOfPass     *int              `json:"yearOfPass,omitempty"`
	Percentage     *float64          `json:"percentage,omitempty"`
	Certificates   []fileCertificate `json:"certificates"`
}

// FileStore is the secondary JSON-file backend. The whole document is held in
// memory and rewritten in full on every write. A single mutex guards the map;
// concurrent server processes sharing the file are not coordinated.
type FileStore struct {
	mu       sync.Mutex
	path     string
	students map[string]*fileStudent
}

// NewFileStore opens (or creates) the JSON mirror at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:     path,
		students: make(map[string]*fileStudent),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read student database file: %w", err)
		}
		// First run: create an empty document
		if err := fs.save(); err != nil {
			return nil, err
		}
		logger.Info().Str("path", path).Msg("Created empty student database file")
		return fs, nil
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &fs.students); err != nil {
			return nil, fmt.Errorf("failed to parse student database file: %w", err)
		}
	}
	logger.Info().Str("path", path).Int("students", len(fs.students)).Msg("Loaded student records from file")

	return fs, nil
}

// save rewrites the whole document. Caller must hold the mutex.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.students, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal student database: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write student database file: %w", err)
	}
	return nil
}

// parseFileTimestamp accepts the ISO timestamps written by this store as well
// as plain RFC 3339 values from hand-edited files.
func parseFileTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05.000Z", time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func toFileCertificate(cert *models.Certificate) fileCertificate {
	return fileCertificate{
		CertificateHash:  cert.CertificateHash,
		PDFFilePath:      cert.PDFFilePath,
		PhotoFilePath:    cert.PhotoFilePath,
		QRCodePath:       cert.QRCodePath,
		BlockchainTxHash: cert.BlockchainTxHash,
		IssueTimestamp:   cert.IssueTimestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

func (s *FileStore) toModel(rollNumber string, entry *fileStudent) *models.Student {
	student := &models.Student{
		RollNumber:     rollNumber,
		MailID:         entry.MailID,
		HashedPassword: entry.HashedPassword,
		StudentName:    entry.StudentName,
		StudentClass:   entry.StudentClass,
		Department:     entry.Department,
		YearOfPass:     entry.YearOfPass,
		Percentage:     entry.Percentage,
		Certificates:   make([]models.Certificate, 0, len(entry.Certificates)),
	}
	for _, fc := range entry.Certificates {
		student.Certificates = append(student.Certificates, s.toCertModel(rollNumber, fc))
	}
	// Newest first, matching the relational ordering
	sort.SliceStable(student.Certificates, func(i, j int) bool {
		return student.Certificates[i].IssueTimestamp.After(student.Certificates[j].IssueTimestamp)
	})
	return student
}

func (s *FileStore) toCertModel(rollNumber string, fc fileCertificate) models.Certificate {
	cert := models.Certificate{
		StudentID:        rollNumber,
		CertificateHash:  fc.CertificateHash,
		PDFFilePath:      fc.PDFFilePath,
		PhotoFilePath:    fc.PhotoFilePath,
		QRCodePath:       fc.QRCodePath,
		BlockchainTxHash: fc.BlockchainTxHash,
	}
	if ts, err := parseFileTimestamp(fc.IssueTimestamp); err == nil {
		cert.IssueTimestamp = ts
	}
	return cert
}

// CreateStudent inserts a new student entry
func (s *FileStore) CreateStudent(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[student.RollNumber]; ok {
		return apperrors.ErrRollNumberExists
	}

	s.students[student.RollNumber] = &fileStudent{
		MailID:         student.MailID,
		HashedPassword: student.HashedPassword,
		StudentName:    student.StudentName,
		StudentClass:   student.StudentClass,
		Department:     student.Department,
		YearOfPass:     student.YearOfPass,
		Percentage:     student.Percentage,
		Certificates:   []fileCertificate{},
	}

	return s.save()
}

// GetStudent retrieves a student by roll number
func (s *FileStore) GetStudent(_ context.Context, rollNumber string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	student := s.toModel(rollNumber, entry)
	student.Certificates = nil
	return student, nil
}

// AppendCertificate attaches a certificate to an existing student entry
func (s *FileStore) AppendCertificate(_ context.Context, rollNumber string, cert *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.students[rollNumber]
	if !ok {
		return apperrors.ErrStudentNotFound
	}

	entry.Certificates = append(entry.Certificates, toFileCertificate(cert))
	return s.save()
}

// ListCertificates returns the student's certificates newest first
func (s *FileStore) ListCertificates(_ context.Context, rollNumber string) ([]models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.toModel(rollNumber, entry).Certificates, nil
}

// FindCertificateByHash scans all entries for a certificate with the hash
func (s *FileStore) FindCertificateByHash(_ context.Context, hash string) (*models.Certificate, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for rollNumber, entry := range s.students {
		for _, fc := range entry.Certificates {
			if fc.CertificateHash == hash {
				cert := s.toCertModel(rollNumber, fc)
				return &cert, entry.StudentName, nil
			}
		}
	}

	return nil, "", apperrors.ErrCertificateNotFound
}

// ListAllStudents returns every student entry with nested certificates
func (s *FileStore) ListAllStudents(_ context.Context) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rollNumbers := make([]string, 0, len(s.students))
	for rollNumber := range s.students {
		rollNumbers = append(rollNumbers, rollNumber)
	}
	sort.Strings(rollNumbers)

	students := make([]*models.Student, 0, len(rollNumbers))
	for _, rollNumber := range rollNumbers {
		students = append(students, s.toModel(rollNumber, s.students[rollNumber]))
	}

	return students, nil
}
