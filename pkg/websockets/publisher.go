package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// AllConnectionsGetter defines an interface for getting all connection IDs.
type AllConnectionsGetter interface {
	GetAllConnections(ctx context.Context) ([]string, error)
}

// DefaultPublisher pushes balance updates to connected clients through the
// API Gateway management API.
type DefaultPublisher struct {
	connections AllConnectionsGetter
	connManager ConnectionManager
	gateway     *apigatewaymanagementapi.Client
}

// NewPublisher creates a new DefaultPublisher targeting the given API
// Gateway management endpoint.
func NewPublisher(connections AllConnectionsGetter, connManager ConnectionManager, apiEndpoint string) (*DefaultPublisher, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	gateway := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &DefaultPublisher{
		connections: connections,
		connManager: connManager,
		gateway:     gateway,
	}, nil
}

// Publish broadcasts a message to every connected client. Delivery is best
// effort: a failed push never fails the ledger operation that triggered
// it, and connections API Gateway reports gone are pruned on the spot.
func (p *DefaultPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.connections.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		p.post(ctx, connectionID, payload)
	}
	return nil
}

func (p *DefaultPublisher) post(ctx context.Context, connectionID string, payload []byte) {
	_, err := p.gateway.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionID),
		Data:         payload,
	})
	if err == nil {
		return
	}

	var gone *apigwtypes.GoneException
	if errors.As(err, &gone) {
		slog.Info("pruning stale websocket connection", "connection_id", connectionID)
		if err := p.connManager.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to remove stale connection", "connection_id", connectionID, "error", err)
		}
		return
	}
	slog.Error("failed to post to connection", "connection_id", connectionID, "error", err)
}
