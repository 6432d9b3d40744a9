package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IsAdmin reports whether the user appears in the admin-users table. This
// backs the external is_admin predicate the approval workflow consumes.
func (s *Store) IsAdmin(ctx context.Context, userID string) (bool, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Admins),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}
	return result.Item != nil, nil
}
