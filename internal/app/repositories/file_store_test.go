package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/pkg/apperrors"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "student_db.json")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs, path
}

func testStudent(roll string) *models.Student {
	year := 2025
	pct := 91.5
	return &models.Student{
		RollNumber:     roll,
		MailID:         roll + "@school.edu",
		HashedPassword: "$2a$12$fakehash",
		StudentName:    "Asha",
		StudentClass:   "XII-A",
		Department:     "Computer Science",
		YearOfPass:     &year,
		Percentage:     &pct,
	}
}

func TestFileStoreCreateAndGetStudent(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	if err := fs.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	student, err := fs.GetStudent(ctx, "R100")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if student.StudentName != "Asha" || student.MailID != "R100@school.edu" {
		t.Errorf("unexpected student: %+v", student)
	}
	if student.HashedPassword == "" {
		t.Error("expected stored credential hash to survive the round trip")
	}
}

func TestFileStoreDuplicateRollNumber(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	if err := fs.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	err := fs.CreateStudent(ctx, testStudent("R100"))
	if !errors.Is(err, apperrors.ErrRollNumberExists) {
		t.Fatalf("expected ErrRollNumberExists, got %v", err)
	}
}

func TestFileStoreGetStudentNotFound(t *testing.T) {
	fs, _ := newTestFileStore(t)

	_, err := fs.GetStudent(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestFileStoreAppendCertificateOrdering(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	if err := fs.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	older := &models.Certificate{
		CertificateHash: "0xaaa",
		IssueTimestamp:  time.Now().Add(-time.Hour),
	}
	newer := &models.Certificate{
		CertificateHash: "0xbbb",
		IssueTimestamp:  time.Now(),
	}
	if err := fs.AppendCertificate(ctx, "R100", older); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}
	if err := fs.AppendCertificate(ctx, "R100", newer); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}

	certs, err := fs.ListCertificates(ctx, "R100")
	if err != nil {
		t.Fatalf("ListCertificates: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("expected 2 certificates, got %d", len(certs))
	}
	if certs[0].CertificateHash != "0xbbb" {
		t.Errorf("expected newest certificate first, got %s", certs[0].CertificateHash)
	}
}

func TestFileStoreAppendCertificateUnknownStudent(t *testing.T) {
	fs, _ := newTestFileStore(t)

	err := fs.AppendCertificate(context.Background(), "ghost", &models.Certificate{CertificateHash: "0xabc"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestFileStoreFindCertificateByHash(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	if err := fs.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	cert := &models.Certificate{
		CertificateHash: "0xdeadbeef",
		PDFFilePath:     "/certificates/a.pdf",
		IssueTimestamp:  time.Now(),
	}
	if err := fs.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}

	found, name, err := fs.FindCertificateByHash(ctx, "0xdeadbeef")
	if err != nil {
		t.Fatalf("FindCertificateByHash: %v", err)
	}
	if found.StudentID != "R100" || name != "Asha" {
		t.Errorf("unexpected owner: id=%s name=%s", found.StudentID, name)
	}

	_, _, err = fs.FindCertificateByHash(ctx, "0xunknown")
	if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		t.Fatalf("expected ErrCertificateNotFound, got %v", err)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	fs, path := newTestFileStore(t)
	ctx := context.Background()

	if err := fs.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	cert := &models.Certificate{
		CertificateHash: "0xabc",
		IssueTimestamp:  time.Now(),
	}
	if err := fs.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	certs, err := reopened.ListCertificates(ctx, "R100")
	if err != nil {
		t.Fatalf("ListCertificates after reopen: %v", err)
	}
	if len(certs) != 1 || certs[0].CertificateHash != "0xabc" {
		t.Errorf("unexpected certificates after reopen: %+v", certs)
	}
}

func TestFileStoreListAllStudentsSorted(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	for _, roll := range []string{"R300", "R100", "R200"} {
		s := testStudent(roll)
		if err := fs.CreateStudent(ctx, s); err != nil {
			t.Fatalf("CreateStudent %s: %v", roll, err)
		}
	}

	students, err := fs.ListAllStudents(ctx)
	if err != nil {
		t.Fatalf("ListAllStudents: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
	for i, want := range []string{"R100", "R200", "R300"} {
		if students[i].RollNumber != want {
			t.Errorf("position %d: expected %s, got %s", i, want, students[i].RollNumber)
		}
	}
}
