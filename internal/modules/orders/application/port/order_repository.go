package port

import (
	"context"
	"errors"

	"trackerMobility/internal/modules/orders/domain"
)

var ErrRepositoryRequired = errors.New("order repository is required")

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.OrderSummary, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	AssignVerifier(ctx context.Context, cmd domain.AssignVerifierCommand) (*domain.Order, error)
	UpdateStatus(ctx context.Context, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrderRequestRepository interface {
	FindAll(ctx context.Context) ([]domain.OrderRequest, error)
	FindByID(ctx context.Context, id int) (*domain.OrderRequest, error)
	Create(ctx context.Context, cmd domain.CreateOrderRequestCommand) (*domain.OrderRequest, error)
	Review(ctx context.Context, cmd domain.ReviewOrderRequestCommand) (*domain.OrderRequest, error)
}
