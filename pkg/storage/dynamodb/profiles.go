package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// GetProfile retrieves a user's profile from DynamoDB by their user ID.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Profiles),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("profile for user %s: %w", userID, storage.ErrNotFound)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(result.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// CreateProfile creates a new profile row. Fails if the user already has
// one.
func (s *Store) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Profiles),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, fmt.Errorf("profile for user %s exists: %w", profile.UserID, storage.ErrProfileConflict)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// ListProfiles retrieves all profiles.
func (s *Store) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Profiles),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	var profiles []models.Profile
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}
	return profiles, nil
}

// profileKey builds the primary key for a profile row.
func profileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}
}
