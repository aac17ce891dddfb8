package usecase

import (
	"context"
	"log/slog"

	"trackerMobility/internal/modules/orders/application/port"
	"trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

const messageInvalidOrderID = "El identificador de la orden no es válido"

type FetchAllOrdersUseCase struct {
	repo    port.OrderRepository
	handler errorhandler.Classifier
}

func NewFetchAllOrdersUseCase(repo port.OrderRepository, handler errorhandler.Classifier) (*FetchAllOrdersUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchAllOrdersUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchAllOrdersUseCase) Execute(ctx context.Context) outcome.Outcome[[]domain.OrderSummary] {
	orders, err := uc.repo.FindAll(ctx)
	if err != nil {
		return errorhandler.Resolve[[]domain.OrderSummary](uc.handler, err, "obtener las órdenes", "Error al obtener las órdenes")
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	return outcome.Succeed(orders, outcome.CountMessage(len(orders), "orden", "órdenes"))
}

type FetchOrderByIDUseCase struct {
	repo    port.OrderRepository
	handler errorhandler.Classifier
}

func NewFetchOrderByIDUseCase(repo port.OrderRepository, handler errorhandler.Classifier) (*FetchOrderByIDUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchOrderByIDUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchOrderByIDUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[*domain.Order] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Order](outcome.CodeInvalidParams, messageInvalidOrderID)
	}
	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return errorhandler.Resolve[*domain.Order](uc.handler, err, "obtener la orden", "Error al obtener la orden")
	}
	if order == nil {
		return outcome.Fail[*domain.Order](outcome.CodeNotFound, "Orden no encontrada")
	}
	return outcome.Succeed(order, "Orden obtenida correctamente")
}

type AssignVerifierUseCase struct {
	repo    port.OrderRepository
	handler errorhandler.Classifier
}

func NewAssignVerifierUseCase(repo port.OrderRepository, handler errorhandler.Classifier) (*AssignVerifierUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &AssignVerifierUseCase{repo: repo, handler: handler}, nil
}

func (uc *AssignVerifierUseCase) Execute(ctx context.Context, rawID any, input domain.AssignVerifierInput) outcome.Outcome[*domain.Order] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Order](outcome.CodeInvalidParams, messageInvalidOrderID)
	}
	input.OrderID = id
	cmd, err := domain.NewAssignVerifierCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Order](uc.handler, err, "asignar el verificador", "Error al asignar el verificador")
	}
	order, err := uc.repo.AssignVerifier(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Order](uc.handler, err, "asignar el verificador", "Error al asignar el verificador")
	}
	slog.Info("verifier assigned", slog.Int("orderId", cmd.OrderID()), slog.Int("verifierId", cmd.VerifierID()))
	return outcome.Succeed(order, "Verificador asignado correctamente")
}

type UpdateOrderStatusUseCase struct {
	repo    port.OrderRepository
	handler errorhandler.Classifier
}

func NewUpdateOrderStatusUseCase(repo port.OrderRepository, handler errorhandler.Classifier) (*UpdateOrderStatusUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &UpdateOrderStatusUseCase{repo: repo, handler: handler}, nil
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, rawID any, input domain.UpdateOrderStatusInput) outcome.Outcome[*domain.Order] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Order](outcome.CodeInvalidParams, messageInvalidOrderID)
	}
	input.OrderID = id
	cmd, err := domain.NewUpdateOrderStatusCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Order](uc.handler, err, "actualizar el estado de la orden", "Error al actualizar el estado")
	}
	order, err := uc.repo.UpdateStatus(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Order](uc.handler, err, "actualizar el estado de la orden", "Error al actualizar el estado")
	}
	return outcome.Succeed(order, "Estado de la orden actualizado correctamente")
}

type DeleteOrderUseCase struct {
	repo    port.OrderRepository
	handler errorhandler.Classifier
}

func NewDeleteOrderUseCase(repo port.OrderRepository, handler errorhandler.Classifier) (*DeleteOrderUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &DeleteOrderUseCase{repo: repo, handler: handler}, nil
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[struct{}] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[struct{}](outcome.CodeInvalidParams, messageInvalidOrderID)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return errorhandler.Resolve[struct{}](uc.handler, err, "eliminar la orden", "Error al eliminar la orden")
	}
	return outcome.Deleted[struct{}]("Orden eliminada correctamente")
}
