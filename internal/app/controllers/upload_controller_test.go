package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploadStorage struct {
	savedPath string
}

func (f *fakeUploadStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return "http://localhost:8080/uploads/" + fileHeader.Filename, nil
}

func (f *fakeUploadStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	f.savedPath = path
	return "http://localhost:8080/uploads/" + path + "/" + fileHeader.Filename, nil
}

func (f *fakeUploadStorage) DeleteFile(string) error { return nil }

func newUploadRouter(storage *fakeUploadStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUploadController(storage)
	router := gin.New()
	router.POST("/uploads/photos", controller.UploadPhoto)
	router.POST("/uploads/diplomas", controller.UploadDiploma)
	return router
}

func multipartUpload(t *testing.T, url, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadPhoto_AcceptsImages(t *testing.T) {
	storage := &fakeUploadStorage{}
	router := newUploadRouter(storage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "/uploads/photos", "portrait.png", []byte("png-bytes")))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "photos", storage.savedPath)
}

func TestUploadPhoto_RejectsPDF(t *testing.T) {
	storage := &fakeUploadStorage{}
	router := newUploadRouter(storage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "/uploads/photos", "portrait.pdf", []byte("%PDF-")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, storage.savedPath, "nothing stored for a rejected type")
}

func TestUploadDiploma_AcceptsPDF(t *testing.T) {
	storage := &fakeUploadStorage{}
	router := newUploadRouter(storage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "/uploads/diplomas", "bac.pdf", []byte("%PDF-")))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "diplomas", storage.savedPath)
}

func TestUpload_RejectsUnknownExtension(t *testing.T) {
	router := newUploadRouter(&fakeUploadStorage{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "/uploads/diplomas", "notes.docx", []byte("zip-bytes")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_RequiresFileField(t *testing.T) {
	router := newUploadRouter(&fakeUploadStorage{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/uploads/photos", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
