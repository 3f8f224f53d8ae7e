package filestorage

import "mime/multipart"

// FileStorage is the external-collaborator contract for candidate photo and
// diploma uploads: the caller uploads a file, receives a URL, and stores only
// that reference in the registration record.
type FileStorage interface {
	// SaveFile saves a file under the storage root and returns its URL.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under a subdirectory (e.g. "photos").
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing file
	// is not an error.
	DeleteFile(filePath string) error
}
