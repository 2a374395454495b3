// Package chain talks to the external certificate registry contract. The
// services only see the Registry interface; transport, signing and gas
// handling stay behind it.
package chain

import (
	"context"
	"strings"
)

// ZeroAddress is the null issuer returned by the registry for hashes that
// were never registered.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// CertificateDetails is the record bound to a certificate hash on chain.
type CertificateDetails struct {
	Issuer    string
	Timestamp uint64
	IsValid   bool
	StudentID string
}

// Issued reports whether the registry holds a real issuer for this record.
func (d *CertificateDetails) Issued() bool {
	return d.Issuer != "" && !strings.EqualFold(d.Issuer, ZeroAddress)
}

// Registry is the capability contract of the external certificate registry.
type Registry interface {
	// IssueCertificate registers (hash, studentID) on chain under the issuer
	// credential and returns the transaction hash once the transaction is
	// mined. Any rejection (revert, signing failure, gas failure) is an
	// error.
	IssueCertificate(ctx context.Context, certHash, studentID string) (string, error)

	// GetCertificateDetails returns the on-chain record for the hash. Hashes
	// that were never registered yield a record with the zero issuer, not an
	// error.
	GetCertificateDetails(ctx context.Context, certHash string) (*CertificateDetails, error)
}
