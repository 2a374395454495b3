package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/repositories"
	"github.com/certichain/certichain/internal/chain"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// Verification statuses. There are no partial states: a hash is VALID only
// when the registry returns a real issuer and the validity flag is set.
const (
	StatusValid   = "VALID"
	StatusInvalid = "INVALID"
)

// certHashPattern matches a 0x-prefixed 32-byte hex token (66 characters).
var certHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// VerifyService cross-references on-chain registry state with off-chain
// certificate metadata.
type VerifyService struct {
	store    repositories.Store
	registry chain.Registry
}

// NewVerifyService creates a new verify service instance
func NewVerifyService(store repositories.Store, registry chain.Registry) *VerifyService {
	return &VerifyService{
		store:    store,
		registry: registry,
	}
}

// ValidateHashFormat checks the textual shape of a certificate hash without
// touching the chain.
func ValidateHashFormat(hash string) error {
	if !certHashPattern.MatchString(hash) {
		return apperrors.ErrInvalidHashFormat
	}
	return nil
}

// VerifyHash queries the registry for the hash and, when the record is
// valid, enriches it with off-chain metadata from whichever store has it.
// Missing metadata does not downgrade a VALID result.
func (s *VerifyService) VerifyHash(ctx context.Context, certHash string) (*dto.VerifyHashResponse, error) {
	if err := ValidateHashFormat(certHash); err != nil {
		return nil, err
	}

	details, err := s.registry.GetCertificateDetails(ctx, certHash)
	if err != nil {
		logger.Error().Err(err).Str("hash", certHash).Msg("Registry lookup failed")
		if errors.Is(err, apperrors.ErrChainUnavailable) {
			return nil, err
		}
		return nil, apperrors.NewExternalServiceError(
			fmt.Sprintf("failed to query certificate registry: %v", err))
	}

	response := &dto.VerifyHashResponse{
		Status: StatusInvalid,
		BlockchainDetails: dto.ChainDetails{
			Issuer:    details.Issuer,
			Timestamp: strconv.FormatUint(details.Timestamp, 10),
			IsValid:   details.IsValid,
			StudentID: details.StudentID,
		},
	}

	if !details.Issued() || !details.IsValid {
		return response, nil
	}

	response.Status = StatusValid
	response.Metadata = s.lookupMetadata(ctx, certHash)
	return response, nil
}

// lookupMetadata fetches the off-chain record for the hash. Absence or store
// failure yields nil metadata, never an error.
func (s *VerifyService) lookupMetadata(ctx context.Context, certHash string) *dto.CertificateMetadata {
	cert, studentName, err := s.store.FindCertificateByHash(ctx, certHash)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCertificateNotFound) {
			logger.Error().Err(err).Str("hash", certHash).Msg("Certificate metadata lookup failed")
		}
		return nil
	}

	metadata := &dto.CertificateMetadata{
		StudentID:      cert.StudentID,
		StudentName:    studentName,
		IssueDate:      cert.IssueTimestamp.Format("02 Jan 2006 15:04 MST"),
		PDFDownloadURL: cert.PDFFilePath,
		PhotoFilePath:  cert.PhotoFilePath,
	}

	// Profile fields come from the owning student record when available
	if student, err := s.store.GetStudent(ctx, cert.StudentID); err == nil {
		metadata.Department = student.Department
		metadata.YearOfPass = student.YearOfPass
		if metadata.StudentName == "" {
			metadata.StudentName = student.StudentName
		}
	}

	return metadata
}
