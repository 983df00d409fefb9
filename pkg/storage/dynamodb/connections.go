package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
)

func connectionKey(userID string, provider models.Provider) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]string{
		"user_id":  userID,
		"provider": string(provider),
	})
}

// GetConnection retrieves a user's connection for a provider.
func (s *Store) GetConnection(ctx context.Context, userID string, provider models.Provider) (*models.Connection, error) {
	key, err := connectionKey(userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connection key: %w", err)
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get connection from DynamoDB: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrConnectionNotFound
	}

	var conn models.Connection
	if err := attributevalue.UnmarshalMap(out.Item, &conn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection: %w", err)
	}

	return &conn, nil
}

// CreateConnection records a newly linked account. The user may hold at most
// one connection per provider.
func (s *Store) CreateConnection(ctx context.Context, conn *models.Connection) (*models.Connection, error) {
	conn.ID = uuid.New().String()
	conn.ConnectedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.ConnectionsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(user_id) AND attribute_not_exists(provider)"),
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return nil, storage.ErrConnectionExists
		}
		return nil, fmt.Errorf("failed to create connection in DynamoDB: %w", err)
	}

	return conn, nil
}

// DeleteConnection removes a user's connection for a provider.
func (s *Store) DeleteConnection(ctx context.Context, userID string, provider models.Provider) error {
	key, err := connectionKey(userID, provider)
	if err != nil {
		return fmt.Errorf("failed to marshal connection key: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.ConnectionsTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(user_id)"),
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return storage.ErrConnectionNotFound
		}
		return fmt.Errorf("failed to delete connection from DynamoDB: %w", err)
	}

	return nil
}

// ListConnections retrieves all of a user's connections.
func (s *Store) ListConnections(ctx context.Context, userID string) ([]models.Connection, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.ConnectionsTableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query connections from DynamoDB: %w", err)
	}

	conns := make([]models.Connection, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &conns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	return conns, nil
}
