package repositories

import (
	"context"
	"errors"

	"github.com/certichain/certichain/internal/app/models"
	"github.com/certichain/certichain/internal/pkg/apperrors"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// DualStore layers the primary relational store over the JSON mirror.
//
// Writes go to the primary first; whatever the outcome, the same write is then
// applied to the mirror, so the mirror tracks every accepted operation rather
// than acting as a failure-only cache. Reads hit the primary and fall back to
// the mirror when the primary errors or has no rows. The two stores are never
// reconciled against each other.
//
// The primary may be nil when the database was unreachable at startup; the
// server then runs on the mirror alone.
type DualStore struct {
	primary   Store
	secondary Store
}

// NewDualStore combines a primary store (may be nil) and the file mirror.
func NewDualStore(primary, secondary Store) *DualStore {
	return &DualStore{
		primary:   primary,
		secondary: secondary,
	}
}

// CreateStudent inserts the student into both backends. The roll number must
// be free in both; a duplicate in either backend is a conflict.
func (d *DualStore) CreateStudent(ctx context.Context, student *models.Student) error {
	// Duplicate quick-check against the mirror first: it is cheap and covers
	// records written while the primary was down.
	if _, err := d.secondary.GetStudent(ctx, student.RollNumber); err == nil {
		return apperrors.ErrRollNumberExists
	}

	var primaryErr error
	if d.primary != nil {
		primaryErr = d.primary.CreateStudent(ctx, student)
		if primaryErr != nil {
			if errors.Is(primaryErr, apperrors.ErrRollNumberExists) {
				return apperrors.ErrRollNumberExists
			}
			logger.Error().Err(primaryErr).Str("rollNumber", student.RollNumber).
				Msg("Primary store student insert failed, continuing to file mirror")
		}
	}

	secondaryErr := d.secondary.CreateStudent(ctx, student)
	if secondaryErr != nil {
		if errors.Is(secondaryErr, apperrors.ErrRollNumberExists) {
			return apperrors.ErrRollNumberExists
		}
		logger.Error().Err(secondaryErr).Str("rollNumber", student.RollNumber).
			Msg("File mirror student insert failed")
		if d.primary == nil || primaryErr != nil {
			return apperrors.NewCustomError(apperrors.ErrStorage, "student could not be persisted to any backend")
		}
	}

	return nil
}

// GetStudent reads from the primary and falls back to the mirror on error or
// absence.
func (d *DualStore) GetStudent(ctx context.Context, rollNumber string) (*models.Student, error) {
	if d.primary != nil {
		student, err := d.primary.GetStudent(ctx, rollNumber)
		if err == nil {
			return student, nil
		}
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Error().Err(err).Str("rollNumber", rollNumber).
				Msg("Primary store read failed, falling back to file mirror")
		}
	}

	return d.secondary.GetStudent(ctx, rollNumber)
}

// AppendCertificate writes the certificate to both backends. If the mirror
// has no entry for the student (it may have been created while the mirror was
// out of date), the entry is materialized from the primary before appending.
func (d *DualStore) AppendCertificate(ctx context.Context, rollNumber string, cert *models.Certificate) error {
	var primaryErr error
	if d.primary != nil {
		primaryErr = d.primary.AppendCertificate(ctx, rollNumber, cert)
		if primaryErr != nil && !errors.Is(primaryErr, apperrors.ErrStudentNotFound) {
			logger.Error().Err(primaryErr).Str("rollNumber", rollNumber).
				Msg("Primary store certificate insert failed, continuing to file mirror")
		}
	}

	secondaryErr := d.secondary.AppendCertificate(ctx, rollNumber, cert)
	if errors.Is(secondaryErr, apperrors.ErrStudentNotFound) && d.primary != nil {
		if student, err := d.primary.GetStudent(ctx, rollNumber); err == nil {
			if err := d.secondary.CreateStudent(ctx, student); err != nil {
				logger.Error().Err(err).Str("rollNumber", rollNumber).
					Msg("Failed to materialize student entry in file mirror")
			}
			secondaryErr = d.secondary.AppendCertificate(ctx, rollNumber, cert)
		}
	}

	if errors.Is(primaryErr, apperrors.ErrStudentNotFound) && errors.Is(secondaryErr, apperrors.ErrStudentNotFound) {
		return apperrors.ErrStudentNotFound
	}
	if d.primary == nil && errors.Is(secondaryErr, apperrors.ErrStudentNotFound) {
		return apperrors.ErrStudentNotFound
	}

	if secondaryErr != nil && !errors.Is(secondaryErr, apperrors.ErrStudentNotFound) {
		logger.Error().Err(secondaryErr).Str("rollNumber", rollNumber).
			Msg("File mirror certificate insert failed")
		if d.primary == nil || primaryErr != nil {
			return apperrors.NewCustomError(apperrors.ErrStorage, "certificate could not be persisted to any backend")
		}
	}

	return nil
}

// ListCertificates reads from the primary and falls back to the mirror when
// the primary errors or returns zero rows.
func (d *DualStore) ListCertificates(ctx context.Context, rollNumber string) ([]models.Certificate, error) {
	if d.primary != nil {
		certs, err := d.primary.ListCertificates(ctx, rollNumber)
		if err == nil && len(certs) > 0 {
			return certs, nil
		}
		if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Error().Err(err).Str("rollNumber", rollNumber).
				Msg("Primary store certificate list failed, falling back to file mirror")
		}

		// Zero rows from the primary: the mirror may still hold records, but
		// a student known only to the primary must not turn into a 404.
		certsFromMirror, mirrorErr := d.secondary.ListCertificates(ctx, rollNumber)
		if mirrorErr != nil {
			if err == nil {
				return certs, nil
			}
			return nil, mirrorErr
		}
		return certsFromMirror, nil
	}

	return d.secondary.ListCertificates(ctx, rollNumber)
}

// FindCertificateByHash reads from the primary and falls back to the mirror.
func (d *DualStore) FindCertificateByHash(ctx context.Context, hash string) (*models.Certificate, string, error) {
	if d.primary != nil {
		cert, name, err := d.primary.FindCertificateByHash(ctx, hash)
		if err == nil {
			return cert, name, nil
		}
		if !errors.Is(err, apperrors.ErrCertificateNotFound) {
			logger.Error().Err(err).Str("hash", hash).
				Msg("Primary store certificate lookup failed, falling back to file mirror")
		}
	}

	return d.secondary.FindCertificateByHash(ctx, hash)
}

// ListAllStudents reads from the primary and falls back to the mirror on
// error.
func (d *DualStore) ListAllStudents(ctx context.Context) ([]*models.Student, error) {
	if d.primary != nil {
		students, err := d.primary.ListAllStudents(ctx)
		if err == nil {
			return students, nil
		}
		logger.Error().Err(err).Msg("Primary store listing failed, falling back to file mirror")
	}

	return d.secondary.ListAllStudents(ctx)
}
