package storage

import (
	"context"

	"github.com/HunterTXx/privateplapay/pkg/models"
)

// WithdrawalStore defines the interface for recording and reading
// withdrawal requests.
type WithdrawalStore interface {
	// CreateWithdrawalRequest inserts a pending withdrawal request.
	CreateWithdrawalRequest(ctx context.Context, req *models.WithdrawalRequest) (*models.WithdrawalRequest, error)

	// GetWithdrawalRequest retrieves a withdrawal request by its ID.
	GetWithdrawalRequest(ctx context.Context, requestID string) (*models.WithdrawalRequest, error)

	// ListWithdrawalsByUserID retrieves all withdrawal requests for a user.
	ListWithdrawalsByUserID(ctx context.Context, userID string) ([]models.WithdrawalRequest, error)

	// ListWithdrawalsByStatus retrieves all withdrawal requests in the
	// given status, across users. Used by the admin console.
	ListWithdrawalsByStatus(ctx context.Context, status models.RequestStatus) ([]models.WithdrawalRequest, error)
}
