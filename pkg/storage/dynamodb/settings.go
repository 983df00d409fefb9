package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
)

// GetSettings retrieves a user's autosync settings from DynamoDB.
func (s *Store) GetSettings(ctx context.Context, userID string) (*models.AutosyncSettings, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings key: %w", err)
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.SettingsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings from DynamoDB: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrSettingsNotFound
	}

	var settings models.AutosyncSettings
	if err := attributevalue.UnmarshalMap(out.Item, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// PutSettings creates or replaces a user's autosync settings.
func (s *Store) PutSettings(ctx context.Context, settings *models.AutosyncSettings) (*models.AutosyncSettings, error) {
	settings.UpdatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.SettingsTableName),
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put settings in DynamoDB: %w", err)
	}

	return settings, nil
}

// conditionalCheckFailed reports whether err is a failed ConditionExpression.
func conditionalCheckFailed(err error) bool {
	var condCheckFailed *types.ConditionalCheckFailedException
	return errors.As(err, &condCheckFailed)
}
