package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WebSocketConnection represents a record in the WebSocket connections
// table.
type WebSocketConnection struct {
	ConnectionID string `dynamodbav:"connection_id"`
	PK           string `dynamodbav:"pk"`
}

// AddConnection saves a new WebSocket connection ID to the database.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	conn := WebSocketConnection{ConnectionID: connectionID, PK: "connections"}
	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Connections),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save connection ID: %w", err)
	}
	return nil
}

// RemoveConnection deletes a WebSocket connection ID from the database.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Tables.Connections),
		Key: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection ID: %w", err)
	}
	return nil
}

// GetAllConnections retrieves all active WebSocket connection IDs.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(s.Tables.Connections),
		ProjectionExpression: aws.String("connection_id"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan connections: %w", err)
	}

	var conns []WebSocketConnection
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &conns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	ids := make([]string, len(conns))
	for i, c := range conns {
		ids[i] = c.ConnectionID
	}
	return ids, nil
}
