package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/pkg/apperrors"
)

// memStore is an in-memory Store with switchable failure modes.
type memStore struct {
	students map[string]*models.Student
	failAll  bool
}

var errMemStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{students: make(map[string]*models.Student)}
}

func (m *memStore) CreateStudent(_ context.Context, student *models.Student) error {
	if m.failAll {
		return errMemStoreDown
	}
	if _, ok := m.students[student.RollNumber]; ok {
		return apperrors.ErrRollNumberExists
	}
	clone := *student
	clone.Certificates = nil
	m.students[student.RollNumber] = &clone
	return nil
}

func (m *memStore) GetStudent(_ context.Context, rollNumber string) (*models.Student, error) {
	if m.failAll {
		return nil, errMemStoreDown
	}
	student, ok := m.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *memStore) AppendCertificate(_ context.Context, rollNumber string, cert *models.Certificate) error {
	if m.failAll {
		return errMemStoreDown
	}
	student, ok := m.students[rollNumber]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Certificates = append([]models.Certificate{*cert}, student.Certificates...)
	return nil
}

func (m *memStore) ListCertificates(_ context.Context, rollNumber string) ([]models.Certificate, error) {
	if m.failAll {
		return nil, errMemStoreDown
	}
	student, ok := m.students[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student.Certificates, nil
}

func (m *memStore) FindCertificateByHash(_ context.Context, hash string) (*models.Certificate, string, error) {
	if m.failAll {
		return nil, "", errMemStoreDown
	}
	for _, student := range m.students {
		for i := range student.Certificates {
			if student.Certificates[i].CertificateHash == hash {
				return &student.Certificates[i], student.StudentName, nil
			}
		}
	}
	return nil, "", apperrors.ErrCertificateNotFound
}

func (m *memStore) ListAllStudents(_ context.Context) ([]*models.Student, error) {
	if m.failAll {
		return nil, errMemStoreDown
	}
	students := make([]*models.Student, 0, len(m.students))
	for _, student := range m.students {
		students = append(students, student)
	}
	return students, nil
}

func TestDualStoreWritesToBothBackends(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	if err := ds.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if _, ok := primary.students["R100"]; !ok {
		t.Error("student missing from primary")
	}
	if _, ok := secondary.students["R100"]; !ok {
		t.Error("student missing from mirror")
	}
}

func TestDualStoreConflictFromEitherBackend(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	// Record exists only in the mirror, e.g. written while the primary was down
	if err := secondary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	err := ds.CreateStudent(ctx, testStudent("R100"))
	if !errors.Is(err, apperrors.ErrRollNumberExists) {
		t.Fatalf("expected ErrRollNumberExists, got %v", err)
	}
}

func TestDualStorePrimaryFailureStillPersistsToMirror(t *testing.T) {
	primary := newMemStore()
	primary.failAll = true
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	if err := ds.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent with failing primary: %v", err)
	}
	if _, ok := secondary.students["R100"]; !ok {
		t.Error("student missing from mirror")
	}
}

func TestDualStoreAllBackendsFailing(t *testing.T) {
	primary := newMemStore()
	primary.failAll = true
	secondary := newMemStore()
	secondary.failAll = true
	ds := NewDualStore(primary, secondary)

	err := ds.CreateStudent(context.Background(), testStudent("R100"))
	if !errors.Is(err, apperrors.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestDualStoreNilPrimary(t *testing.T) {
	secondary := newMemStore()
	ds := NewDualStore(nil, secondary)
	ctx := context.Background()

	if err := ds.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	student, err := ds.GetStudent(ctx, "R100")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if student.RollNumber != "R100" {
		t.Errorf("unexpected student: %+v", student)
	}
}

func TestDualStoreGetStudentFallsBackToMirror(t *testing.T) {
	primary := newMemStore()
	primary.failAll = true
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	if err := secondary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	student, err := ds.GetStudent(ctx, "R100")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if student.RollNumber != "R100" {
		t.Errorf("unexpected student: %+v", student)
	}
}

func TestDualStoreAppendMaterializesMirrorEntry(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	// Student exists only in the primary
	if err := primary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed primary: %v", err)
	}

	cert := &models.Certificate{CertificateHash: "0xabc", IssueTimestamp: time.Now()}
	if err := ds.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("AppendCertificate: %v", err)
	}

	entry, ok := secondary.students["R100"]
	if !ok {
		t.Fatal("mirror entry was not materialized")
	}
	if len(entry.Certificates) != 1 || entry.Certificates[0].CertificateHash != "0xabc" {
		t.Errorf("unexpected mirror certificates: %+v", entry.Certificates)
	}
}

func TestDualStoreAppendUnknownStudent(t *testing.T) {
	ds := NewDualStore(newMemStore(), newMemStore())

	err := ds.AppendCertificate(context.Background(), "ghost", &models.Certificate{CertificateHash: "0xabc"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDualStoreListCertificatesFallsBackOnEmptyPrimary(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	// Student known to both, certificate only in the mirror
	if err := primary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed primary: %v", err)
	}
	if err := secondary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}
	cert := &models.Certificate{CertificateHash: "0xabc", IssueTimestamp: time.Now()}
	if err := secondary.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("seed mirror certificate: %v", err)
	}

	certs, err := ds.ListCertificates(ctx, "R100")
	if err != nil {
		t.Fatalf("ListCertificates: %v", err)
	}
	if len(certs) != 1 || certs[0].CertificateHash != "0xabc" {
		t.Errorf("unexpected certificates: %+v", certs)
	}
}

func TestDualStoreListCertificatesKeepsPrimaryEmptyOnMirrorMiss(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	// Student known only to the primary, no certificates anywhere
	if err := primary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed primary: %v", err)
	}

	certs, err := ds.ListCertificates(ctx, "R100")
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(certs) != 0 {
		t.Errorf("expected no certificates, got %+v", certs)
	}
}

func TestDualStoreFindCertificateFallsBackToMirror(t *testing.T) {
	primary := newMemStore()
	secondary := newMemStore()
	ds := NewDualStore(primary, secondary)
	ctx := context.Background()

	if err := secondary.CreateStudent(ctx, testStudent("R100")); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}
	cert := &models.Certificate{CertificateHash: "0xabc", StudentID: "R100", IssueTimestamp: time.Now()}
	if err := secondary.AppendCertificate(ctx, "R100", cert); err != nil {
		t.Fatalf("seed mirror certificate: %v", err)
	}

	found, name, err := ds.FindCertificateByHash(ctx, "0xabc")
	if err != nil {
		t.Fatalf("FindCertificateByHash: %v", err)
	}
	if found.CertificateHash != "0xabc" || name != "Asha" {
		t.Errorf("unexpected result: cert=%+v name=%s", found, name)
	}
}
