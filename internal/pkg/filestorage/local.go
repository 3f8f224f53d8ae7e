package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/logger"
)

// LocalStorage saves uploads to the local filesystem and serves them through
// the router's static /uploads mount.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // prepended to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves a file to a subdirectory of the storage root. The
// stored name is a fresh UUID keeping the original extension, so concurrent
// uploads never collide.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/")
		if subPath != "" {
			accessiblePath += "/" + subPath
		}
		accessiblePath += "/" + storedName
	} else {
		accessiblePath = filepath.Join("uploads", subPath, storedName)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", storedName).Msg("File saved")
	return accessiblePath, nil
}

// SaveFile saves an uploaded file directly under the storage root.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// DeleteFile removes a file given the stored URL or relative path. Missing
// files are treated as already deleted.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" || filename == "uploads" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	// Uploads live either at the root or one level down (photos/, diplomas/)
	candidates := []string{
		filepath.Join(ls.basePath, filename),
		filepath.Join(ls.basePath, filepath.Base(filepath.Dir(filePath)), filename),
	}
	for _, physicalPath := range candidates {
		if _, err := os.Stat(physicalPath); err == nil {
			return os.Remove(physicalPath)
		}
	}

	logger.Warn().Str("path", filePath).Msg("File to delete does not exist")
	return nil
}
