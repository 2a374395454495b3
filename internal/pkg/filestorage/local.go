package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/certichain/certichain/internal/pkg/logger"
)

// Subdirectories of the public storage root. Uploaded certificates, student
// photos and generated QR images each live in a fixed directory so the
// router can serve them statically.
const (
	SubdirCertificates = "certificates"
	SubdirPhotos       = "photos"
	SubdirQRCodes      = "qrcodes"
)

// LocalStorage handles saving files under the public directory of the server.
// Paths handed back to callers are web paths ("/certificates/<name>.pdf")
// relative to the static file root.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath and
// ensures the fixed subdirectories exist.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	for _, sub := range []string{SubdirCertificates, SubdirPhotos, SubdirQRCodes} {
		dir := filepath.Join(basePath, sub)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create storage directory")
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	logger.Info().Str("path", basePath).Msg("Local storage directories ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveUpload saves a multipart upload into the given subdirectory under a
// collision-free name and returns the web path of the stored file.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader, subdir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, subdir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	webPath := "/" + subdir + "/" + uniqueFilename
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", webPath).Msg("File saved")
	return webPath, nil
}

// QRCodePath returns the web path a QR image for the given file name will be
// served under.
func (ls *LocalStorage) QRCodePath(filename string) string {
	return "/" + SubdirQRCodes + "/" + filename
}

// FullPath resolves a stored web path back to the physical path on disk.
func (ls *LocalStorage) FullPath(webPath string) string {
	rel := strings.TrimPrefix(webPath, "/")
	if rel == "" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel))
}

// DeleteFile removes a stored file given its web path. Missing files are
// treated as already deleted.
func (ls *LocalStorage) DeleteFile(webPath string) error {
	if webPath == "" {
		return nil
	}

	physicalPath := ls.FullPath(webPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", webPath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
