package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"session-gateway/app/domain"
	"session-gateway/app/port"
	"session-gateway/app/utils/validator"
)

// FileUsecase stores and deletes per-user blobs. Unlike reconciliation,
// blob failures are surfaced to the caller: a file upload that silently
// vanished is worse than an error.
type FileUsecase struct {
	providers port.Providers
	logger    *slog.Logger
}

// NewFileUsecase creates a new FileUsecase instance
func NewFileUsecase(providers port.Providers, log *slog.Logger) *FileUsecase {
	return &FileUsecase{providers: providers, logger: log}
}

// StoreUserFile uploads the reader's contents under the caller's file
// prefix and returns a signed download URL.
func (u *FileUsecase) StoreUserFile(ctx context.Context, userID, filename string, content io.Reader) (string, error) {
	path, err := userFilePath(userID, filename)
	if err != nil {
		return "", err
	}

	blobs, err := u.providers.BlobStore(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve blob store: %w", err)
	}

	url, err := blobs.Upload(ctx, content, path)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}

	u.logger.Info("file stored", "user_id", userID, "path", path)
	return url, nil
}

// DeleteUserFile removes the named file. Deleting a file that does not
// exist is not an error; the boolean reports whether anything was removed.
func (u *FileUsecase) DeleteUserFile(ctx context.Context, userID, filename string) (bool, error) {
	path, err := userFilePath(userID, filename)
	if err != nil {
		return false, err
	}

	blobs, err := u.providers.BlobStore(ctx)
	if err != nil {
		return false, fmt.Errorf("resolve blob store: %w", err)
	}

	deleted, err := blobs.Delete(ctx, path)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", path, err)
	}

	u.logger.Info("file delete", "user_id", userID, "path", path, "deleted", deleted)
	return deleted, nil
}

func userFilePath(userID, filename string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user id", domain.ErrUploadFailed)
	}
	if !validator.IsSafeFilename(filename) {
		return "", fmt.Errorf("%w: unsafe filename %q", domain.ErrUploadFailed, filename)
	}
	return fmt.Sprintf("users/%s/files/%s", userID, filename), nil
}
