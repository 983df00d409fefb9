package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetSettings(t *testing.T) {
	settings := &models.AutosyncSettings{
		UserID:        "test-user",
		Enabled:       true,
		LagDays:       3,
		BankAccountID: "acct-123",
	}

	t.Run("Success", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(settings)
		assert.NoError(t, err)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		store := New(mockClient, "settings", "connections")
		got, err := store.GetSettings(context.Background(), "test-user")

		assert.NoError(t, err)
		assert.Equal(t, "test-user", got.UserID)
		assert.True(t, got.Enabled)
		assert.Equal(t, 3, got.LagDays)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := New(mockClient, "settings", "connections")
		_, err := store.GetSettings(context.Background(), "test-user")

		assert.ErrorIs(t, err, storage.ErrSettingsNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some storage error"))

		store := New(mockClient, "settings", "connections")
		_, err := store.GetSettings(context.Background(), "test-user")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get settings from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestPutSettings(t *testing.T) {
	settings := &models.AutosyncSettings{UserID: "test-user", Enabled: true, LagDays: 3}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "settings", "connections")
		saved, err := store.PutSettings(context.Background(), settings)

		assert.NoError(t, err)
		assert.False(t, saved.UpdatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some storage error"))

		store := New(mockClient, "settings", "connections")
		_, err := store.PutSettings(context.Background(), settings)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to put settings in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}
