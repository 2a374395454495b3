package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/app/models/dto"
	"github.com/certichain/certichain/internal/app/repositories"
	"github.com/certichain/certichain/internal/chain"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/filehash"
	"github.com/certichain/certichain/internal/pkg/filestorage"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// qrImageSize is the pixel width of generated QR images.
const qrImageSize = 256

// CertificateService orchestrates one issuance: hash the uploaded PDF,
// register the hash on chain, generate the QR image and persist the record.
// The chain registration must succeed before anything is persisted; local
// files created along the way are removed on any failure. Chain writes are
// never rolled back.
type CertificateService struct {
	store    repositories.Store
	registry chain.Registry
	storage  *filestorage.LocalStorage
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(store repositories.Store, registry chain.Registry, storage *filestorage.LocalStorage) *CertificateService {
	return &CertificateService{
		store:    store,
		registry: registry,
		storage:  storage,
	}
}

// cleanupFiles removes the given stored files; failures are logged only.
func (s *CertificateService) cleanupFiles(webPaths ...string) {
	for _, path := range webPaths {
		if path == "" {
			continue
		}
		if err := s.storage.DeleteFile(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to clean up file after aborted issuance")
		}
	}
}

// IssueCertificate runs the issuance pipeline for an already-uploaded PDF and
// photo, identified by their stored web paths.
func (s *CertificateService) IssueCertificate(ctx context.Context, studentID, pdfPath, photoPath string) (*dto.IssueCertificateResponse, error) {
	// The student must be registered in at least one backend before any
	// certificate is issued for them.
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		s.cleanupFiles(pdfPath, photoPath)
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error checking student: %w", err)
	}

	hashHex, err := filehash.SumFile(s.storage.FullPath(pdfPath))
	if err != nil {
		s.cleanupFiles(pdfPath, photoPath)
		return nil, fmt.Errorf("error hashing certificate document: %w", err)
	}
	certHash := "0x" + hashHex

	qrFilename := fmt.Sprintf("%s-%d.png", studentID, time.Now().UnixNano())
	qrPath := s.storage.QRCodePath(qrFilename)
	if err := qrcode.WriteFile(certHash, qrcode.Medium, qrImageSize, s.storage.FullPath(qrPath)); err != nil {
		s.cleanupFiles(pdfPath, photoPath)
		return nil, fmt.Errorf("error generating QR code: %w", err)
	}

	txHash, err := s.registry.IssueCertificate(ctx, certHash, studentID)
	if err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Str("hash", certHash).Msg("Chain registration failed, aborting issuance")
		s.cleanupFiles(pdfPath, photoPath, qrPath)
		if errors.Is(err, apperrors.ErrChainUnavailable) || errors.Is(err, apperrors.ErrChainRejected) {
			return nil, err
		}
		return nil, apperrors.NewExternalServiceError(
			fmt.Sprintf("blockchain registration failed: %v", err))
	}

	cert := &models.Certificate{
		StudentID:        studentID,
		CertificateHash:  certHash,
		PDFFilePath:      pdfPath,
		PhotoFilePath:    photoPath,
		QRCodePath:       qrPath,
		BlockchainTxHash: txHash,
		IssueTimestamp:   time.Now().UTC(),
	}

	if err := s.store.AppendCertificate(ctx, studentID, cert); err != nil {
		// The chain registration stands; only the local artifacts are rolled
		// back.
		s.cleanupFiles(pdfPath, photoPath, qrPath)
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewCustomError(apperrors.ErrStorage,
			fmt.Sprintf("certificate issued on chain (tx %s) but could not be persisted: %v", txHash, err))
	}

	logger.Info().
		Str("studentId", studentID).
		Str("hash", certHash).
		Str("txHash", txHash).
		Msg("Certificate issued and blockchain transaction confirmed")

	return &dto.IssueCertificateResponse{
		Hash:       certHash,
		TxHash:     txHash,
		QRCodePath: qrPath,
	}, nil
}
