package usecase

import (
	"errors"

	"trackerMobility/internal/modules/orders/application/port"
	"trackerMobility/internal/shared/errorhandler"
)

type OrderUseCases struct {
	FetchAll       *FetchAllOrdersUseCase
	FetchByID      *FetchOrderByIDUseCase
	AssignVerifier *AssignVerifierUseCase
	UpdateStatus   *UpdateOrderStatusUseCase
	Delete         *DeleteOrderUseCase
}

func NewOrderUseCases(repo port.OrderRepository, handler errorhandler.Classifier) (*OrderUseCases, error) {
	fetchAll, err1 := NewFetchAllOrdersUseCase(repo, handler)
	fetchByID, err2 := NewFetchOrderByIDUseCase(repo, handler)
	assign, err3 := NewAssignVerifierUseCase(repo, handler)
	status, err4 := NewUpdateOrderStatusUseCase(repo, handler)
	remove, err5 := NewDeleteOrderUseCase(repo, handler)
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}
	return &OrderUseCases{FetchAll: fetchAll, FetchByID: fetchByID, AssignVerifier: assign, UpdateStatus: status, Delete: remove}, nil
}

type OrderRequestUseCases struct {
	FetchAll  *FetchAllOrderRequestsUseCase
	FetchByID *FetchOrderRequestByIDUseCase
	Create    *CreateOrderRequestUseCase
	Review    *ReviewOrderRequestUseCase
}

func NewOrderRequestUseCases(repo port.OrderRequestRepository, handler errorhandler.Classifier) (*OrderRequestUseCases, error) {
	fetchAll, err1 := NewFetchAllOrderRequestsUseCase(repo, handler)
	fetchByID, err2 := NewFetchOrderRequestByIDUseCase(repo, handler)
	create, err3 := NewCreateOrderRequestUseCase(repo, handler)
	review, err4 := NewReviewOrderRequestUseCase(repo, handler)
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return nil, err
	}
	return &OrderRequestUseCases{FetchAll: fetchAll, FetchByID: fetchByID, Create: create, Review: review}, nil
}
