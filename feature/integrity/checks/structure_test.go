package checks

import (
	"context"
	"testing"

	"dex-viewer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRequiredFolders(t *testing.T) {
	assert.Equal(t, []string{"data", "data/json"}, RequiredFolders("/data/json/"))
	assert.Equal(t, []string{"datasets"}, RequiredFolders("datasets"))
	assert.Nil(t, RequiredFolders(""))
}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "dex").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "dex", "data/json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "dex").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "dex", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), mockClient, "dex", "data/json")
		assert.NoError(t, err)
		assert.Equal(t, []string{"data", "data/json"}, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "dex").Return(true, nil)

		for _, folder := range RequiredFolders("data/json") {
			mockClient.On("ListObjects", mock.Anything, "dex", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == folder+"/" && opts.MaxKeys == 1
			})).Return(mocks.Objects(minio.ObjectInfo{Key: folder + "/"}))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "dex", "data/json")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("List Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "dex").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "dex", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: assert.AnError}))

		_, err := CheckStructure(context.Background(), mockClient, "dex", "data/json")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()
	mockClient := new(mocks.Client)

	mockClient.On("PutObject", mock.Anything, "dex", "data/json/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "dex", logger, []string{"data/json"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestFixStructure_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "dex", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

	err := FixStructure(context.Background(), mockClient, "dex", zap.NewNop(), []string{"data", "data/json"})
	assert.ErrorIs(t, err, assert.AnError)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}
