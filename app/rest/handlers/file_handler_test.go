package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-gateway/app/domain"
	mock_port "session-gateway/app/mocks"
)

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestFileHandler_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mock_port.NewMockFileUsecase(ctrl)
	uc.EXPECT().
		StoreUserFile(gomock.Any(), "uid", "report.pdf", gomock.Any()).
		Return("https://signed.example.com/report.pdf", nil)

	h := NewFileHandler(uc, testLogger(t))

	body, contentType := multipartBody(t, "report.pdf", "pdf-bytes")
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp FileUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "report.pdf", resp.Filename)
	assert.Equal(t, "https://signed.example.com/report.pdf", resp.URL)
}

func TestFileHandler_Upload_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFileHandler(mock_port.NewMockFileUsecase(ctrl), testLogger(t))

	body, contentType := multipartBody(t, "report.pdf", "x")
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFileHandler_Upload_MissingFilePart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFileHandler(mock_port.NewMockFileUsecase(ctrl), testLogger(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileHandler_Upload_UnsafeFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Usecase must not be reached for a rejected name.
	h := NewFileHandler(mock_port.NewMockFileUsecase(ctrl), testLogger(t))

	body, contentType := multipartBody(t, "..", "x")
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestFileHandler_Upload_BlobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mock_port.NewMockFileUsecase(ctrl)
	uc.EXPECT().StoreUserFile(gomock.Any(), "uid", "report.pdf", gomock.Any()).
		Return("", domain.ErrUploadFailed)

	h := NewFileHandler(uc, testLogger(t))

	body, contentType := multipartBody(t, "report.pdf", "x")
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestFileHandler_Delete(t *testing.T) {
	tests := []struct {
		name        string
		deleted     bool
		wantDeleted bool
	}{
		{name: "deletes existing file", deleted: true, wantDeleted: true},
		{name: "missing file still succeeds", deleted: false, wantDeleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mock_port.NewMockFileUsecase(ctrl)
			uc.EXPECT().DeleteUserFile(gomock.Any(), "uid", "old.txt").
				Return(tt.deleted, nil)

			h := NewFileHandler(uc, testLogger(t))

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/v1/files/old.txt", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("filename")
			c.SetParamValues("old.txt")
			c.Set("subject_id", "uid")

			require.NoError(t, h.Delete(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp FileDeleteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDeleted, resp.Deleted)
		})
	}
}
