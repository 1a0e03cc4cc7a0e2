package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"dex-viewer/core/storage"
	"dex-viewer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "dex",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "data/json/pokemon.json", storage.ObjectKey("data/json", "pokemon.json"))
	assert.Equal(t, "data/json/pokemon.json", storage.ObjectKey("/data/json/", "pokemon.json"))
	assert.Equal(t, "pokemon.json", storage.ObjectKey("", "pokemon.json"))
	assert.Equal(t, "data/json/moves.json", storage.Config{Prefix: "data/json"}.ObjectKey("moves.json"))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.True(t, storage.IsNotFound(storage.ErrNotFound))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, storage.IsNotFound(errors.New("connection reset")))
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "dex", "data/json/types.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"list":[]}`)), nil)

		data, err := storage.ReadObject(ctx, client, "dex", "data/json/types.json")
		require.NoError(t, err)
		assert.Equal(t, `{"list":[]}`, string(data))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "dex", "data/json/nope.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		_, err := storage.ReadObject(ctx, client, "dex", "data/json/nope.json")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "dex", "data/json/moves.json", mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := storage.ReadObject(ctx, client, "dex", "data/json/moves.json")
		assert.Error(t, err)
		assert.False(t, storage.IsNotFound(err))
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "dex").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "dex", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "dex").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "dex", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "dex", "eu-west-1"))
		client.AssertExpectations(t)
	})
}
