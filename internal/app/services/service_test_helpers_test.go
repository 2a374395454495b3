package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/certichain/certichain/internal/app/repositories"
	"github.com/certichain/certichain/internal/chain"
)

// fakeRegistry is a scriptable chain.Registry for service tests.
type fakeRegistry struct {
	txHash      string
	issueErr    error
	details     *chain.CertificateDetails
	detailsErr  error
	issueCalls  int
	detailCalls int
	lastHash    string
}

func (f *fakeRegistry) IssueCertificate(_ context.Context, certHash, _ string) (string, error) {
	f.issueCalls++
	f.lastHash = certHash
	if f.issueErr != nil {
		return "", f.issueErr
	}
	if f.txHash == "" {
		return "0xtx", nil
	}
	return f.txHash, nil
}

func (f *fakeRegistry) GetCertificateDetails(_ context.Context, certHash string) (*chain.CertificateDetails, error) {
	f.detailCalls++
	f.lastHash = certHash
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func newTestStore(t *testing.T) repositories.Store {
	t.Helper()
	fs, err := repositories.NewFileStore(filepath.Join(t.TempDir(), "student_db.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}
