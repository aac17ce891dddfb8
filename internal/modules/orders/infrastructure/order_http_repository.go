package infrastructure

import (
	"context"
	"fmt"

	"trackerMobility/internal/modules/orders/application/port"
	"trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/transport"
)

type OrderHTTPRepository struct {
	rest transport.Requester
}

var _ port.OrderRepository = (*OrderHTTPRepository)(nil)

func NewOrderHTTPRepository(rest transport.Requester) *OrderHTTPRepository {
	return &OrderHTTPRepository{rest: rest}
}

func (r *OrderHTTPRepository) FindAll(ctx context.Context) ([]domain.OrderSummary, error) {
	payload, err := r.rest.Get(ctx, ordersPath, nil)
	if err != nil {
		return nil, err
	}
	return domain.BuildOrderSummaryList(normalization.ItemsFromPayload(payload, "orders")), nil
}

func (r *OrderHTTPRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	payload, err := r.rest.Get(ctx, orderPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOrder(payload), nil
}

func (r *OrderHTTPRepository) AssignVerifier(ctx context.Context, cmd domain.AssignVerifierCommand) (*domain.Order, error) {
	payload, err := r.rest.Patch(ctx, orderPath(cmd.OrderID())+"/assign", cmd.Payload())
	if err != nil {
		return nil, err
	}
	if order := decodeOrder(payload); order != nil {
		return order, nil
	}
	return &domain.Order{OrderSummary: domain.OrderSummary{
		ID:         cmd.OrderID(),
		VerifierID: cmd.VerifierID(),
		Status:     domain.OrderStatusAssigned,
	}}, nil
}

func (r *OrderHTTPRepository) UpdateStatus(ctx context.Context, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error) {
	payload, err := r.rest.Patch(ctx, orderPath(cmd.OrderID())+"/status", cmd.Payload())
	if err != nil {
		return nil, err
	}
	if order := decodeOrder(payload); order != nil {
		return order, nil
	}
	return &domain.Order{OrderSummary: domain.OrderSummary{ID: cmd.OrderID(), Status: cmd.Status()}}, nil
}

func (r *OrderHTTPRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.rest.Delete(ctx, orderPath(id)); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

func decodeOrder(payload any) *domain.Order {
	order, ok := domain.NormalizeOrder(normalization.MapFromPayload(payload))
	if !ok {
		return nil
	}
	return &order
}

type OrderRequestHTTPRepository struct {
	rest transport.Requester
}

var _ port.OrderRequestRepository = (*OrderRequestHTTPRepository)(nil)

func NewOrderRequestHTTPRepository(rest transport.Requester) *OrderRequestHTTPRepository {
	return &OrderRequestHTTPRepository{rest: rest}
}

func (r *OrderRequestHTTPRepository) FindAll(ctx context.Context) ([]domain.OrderRequest, error) {
	payload, err := r.rest.Get(ctx, orderRequestsPath, nil)
	if err != nil {
		return nil, err
	}
	return domain.BuildOrderRequestList(normalization.ItemsFromPayload(payload, "requests")), nil
}

func (r *OrderRequestHTTPRepository) FindByID(ctx context.Context, id int) (*domain.OrderRequest, error) {
	payload, err := r.rest.Get(ctx, orderRequestPath(id), nil)
	if err != nil {
		return nil, err
	}
	request, ok := domain.NormalizeOrderRequest(normalization.MapFromPayload(payload))
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (r *OrderRequestHTTPRepository) Create(ctx context.Context, cmd domain.CreateOrderRequestCommand) (*domain.OrderRequest, error) {
	payload, err := r.rest.Post(ctx, orderRequestsPath, cmd.Payload())
	if err != nil {
		return nil, err
	}
	request, ok := domain.NormalizeOrderRequest(normalization.MapFromPayload(payload))
	if !ok {
		return nil, fmt.Errorf("create order request: upstream returned no record")
	}
	return &request, nil
}

func (r *OrderRequestHTTPRepository) Review(ctx context.Context, cmd domain.ReviewOrderRequestCommand) (*domain.OrderRequest, error) {
	payload, err := r.rest.Patch(ctx, orderRequestPath(cmd.RequestID())+"/review", cmd.Payload())
	if err != nil {
		return nil, err
	}
	request, ok := domain.NormalizeOrderRequest(normalization.MapFromPayload(payload))
	if !ok {
		request = domain.OrderRequest{ID: cmd.RequestID(), Status: domain.RequestStatus(cmd.Decision()), RejectionReason: cmd.Reason()}
	}
	return &request, nil
}
