package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-gateway/app/port"
	apperrors "session-gateway/app/utils/errors"
	appvalidator "session-gateway/app/utils/validator"
)

// FileHandler handles per-user file HTTP requests. All routes require an
// active session; the file owner is always the session subject.
type FileHandler struct {
	fileUsecase port.FileUsecase
	validator   *appvalidator.Validator
	logger      *slog.Logger
}

type fileRequest struct {
	Filename string `json:"filename" validate:"required,filename"`
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileUsecase port.FileUsecase, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileUsecase: fileUsecase,
		validator:   appvalidator.New(),
		logger:      logger,
	}
}

// Upload handles POST /v1/files with a multipart "file" part.
func (h *FileHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	subjectID, ok := c.Get("subject_id").(string)
	if !ok || subjectID == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "no active session",
			Code:  string(apperrors.ErrCodeInvalidSession),
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "multipart file part is required",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := h.validator.Validate(fileRequest{Filename: fileHeader.Filename}); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "cannot read uploaded file",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}
	defer src.Close()

	url, err := h.fileUsecase.StoreUserFile(ctx, subjectID, fileHeader.Filename, src)
	if err != nil {
		appErr := apperrors.FromDomain(err)
		h.logger.Warn("file upload failed",
			"subject_id", subjectID,
			"filename", fileHeader.Filename,
			"code", appErr.Code)
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
	}

	return c.JSON(http.StatusCreated, FileUploadResponse{
		Status:   "success",
		Filename: fileHeader.Filename,
		URL:      url,
	})
}

// Delete handles DELETE /v1/files/:filename.
func (h *FileHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	subjectID, ok := c.Get("subject_id").(string)
	if !ok || subjectID == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "no active session",
			Code:  string(apperrors.ErrCodeInvalidSession),
		})
	}

	filename := c.Param("filename")
	if err := h.validator.Validate(fileRequest{Filename: filename}); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	deleted, err := h.fileUsecase.DeleteUserFile(ctx, subjectID, filename)
	if err != nil {
		appErr := apperrors.FromDomain(err)
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
	}

	return c.JSON(http.StatusOK, FileDeleteResponse{
		Status:  "success",
		Deleted: deleted,
	})
}
