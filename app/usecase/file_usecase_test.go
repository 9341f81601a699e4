package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-gateway/app/domain"
	mock_port "session-gateway/app/mocks"
)

func TestFileUsecase_StoreUserFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobs := mock_port.NewMockBlobStore(ctrl)
	blobs.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "users/user-1/files/avatar.png").
		Return("https://signed.example.com/avatar.png", nil)

	providers := mock_port.NewMockProviders(ctrl)
	providers.EXPECT().BlobStore(gomock.Any()).Return(blobs, nil)

	uc := NewFileUsecase(providers, testLogger(t))

	url, err := uc.StoreUserFile(context.Background(), "user-1", "avatar.png",
		strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/avatar.png", url)
}

func TestFileUsecase_StoreUserFile_UnsafeFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Blob store must never be touched for a rejected name.
	providers := mock_port.NewMockProviders(ctrl)
	uc := NewFileUsecase(providers, testLogger(t))

	for _, name := range []string{"", ".", "..", "../secret", "a/b.png", `a\b.png`} {
		_, err := uc.StoreUserFile(context.Background(), "user-1", name,
			strings.NewReader("x"))
		assert.ErrorIs(t, err, domain.ErrUploadFailed, "filename %q", name)
	}
}

func TestFileUsecase_StoreUserFile_UploadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobs := mock_port.NewMockBlobStore(ctrl)
	blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.ErrUploadFailed)

	providers := mock_port.NewMockProviders(ctrl)
	providers.EXPECT().BlobStore(gomock.Any()).Return(blobs, nil)

	uc := NewFileUsecase(providers, testLogger(t))

	_, err := uc.StoreUserFile(context.Background(), "user-1", "doc.pdf",
		strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestFileUsecase_DeleteUserFile(t *testing.T) {
	tests := []struct {
		name        string
		deleted     bool
		wantDeleted bool
	}{
		{name: "existing file removed", deleted: true, wantDeleted: true},
		{name: "missing file is not an error", deleted: false, wantDeleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			blobs := mock_port.NewMockBlobStore(ctrl)
			blobs.EXPECT().
				Delete(gomock.Any(), "users/user-1/files/old.txt").
				Return(tt.deleted, nil)

			providers := mock_port.NewMockProviders(ctrl)
			providers.EXPECT().BlobStore(gomock.Any()).Return(blobs, nil)

			uc := NewFileUsecase(providers, testLogger(t))

			deleted, err := uc.DeleteUserFile(context.Background(), "user-1", "old.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestFileUsecase_DeleteUserFile_UnsupportedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providers := mock_port.NewMockProviders(ctrl)
	providers.EXPECT().BlobStore(gomock.Any()).
		Return(nil, domain.ErrUnsupportedProvider)

	uc := NewFileUsecase(providers, testLogger(t))

	_, err := uc.DeleteUserFile(context.Background(), "user-1", "old.txt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)
}
