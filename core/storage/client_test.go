package storage_test

import (
	"context"
	"errors"
	"testing"

	"icevision/core/storage"
	"icevision/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, storage.Config{}.Enabled())
	assert.True(t, storage.Config{Endpoint: "localhost:9000"}.Enabled())
}

func TestEnsureBucket_AlreadyExists(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "icevision").Return(true, nil)

	err := storage.EnsureBucket(context.Background(), client, "icevision")
	assert.NoError(t, err)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureBucket_Creates(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "icevision").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "icevision", mock.Anything).Return(nil)

	err := storage.EnsureBucket(context.Background(), client, "icevision")
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestEnsureBucket_CheckFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "icevision").Return(false, errors.New("network down"))

	err := storage.EnsureBucket(context.Background(), client, "icevision")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
}
