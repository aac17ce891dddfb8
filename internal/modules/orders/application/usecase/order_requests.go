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

const messageInvalidRequestID = "El identificador de la solicitud no es válido"

type FetchAllOrderRequestsUseCase struct {
	repo    port.OrderRequestRepository
	handler errorhandler.Classifier
}

func NewFetchAllOrderRequestsUseCase(repo port.OrderRequestRepository, handler errorhandler.Classifier) (*FetchAllOrderRequestsUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchAllOrderRequestsUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchAllOrderRequestsUseCase) Execute(ctx context.Context) outcome.Outcome[[]domain.OrderRequest] {
	requests, err := uc.repo.FindAll(ctx)
	if err != nil {
		return errorhandler.Resolve[[]domain.OrderRequest](uc.handler, err, "obtener las solicitudes", "Error al obtener las solicitudes")
	}
	if requests == nil {
		requests = []domain.OrderRequest{}
	}
	return outcome.Succeed(requests, outcome.CountMessage(len(requests), "solicitud", "solicitudes"))
}

type FetchOrderRequestByIDUseCase struct {
	repo    port.OrderRequestRepository
	handler errorhandler.Classifier
}

func NewFetchOrderRequestByIDUseCase(repo port.OrderRequestRepository, handler errorhandler.Classifier) (*FetchOrderRequestByIDUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchOrderRequestByIDUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchOrderRequestByIDUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[*domain.OrderRequest] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.OrderRequest](outcome.CodeInvalidParams, messageInvalidRequestID)
	}
	request, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return errorhandler.Resolve[*domain.OrderRequest](uc.handler, err, "obtener la solicitud", "Error al obtener la solicitud")
	}
	if request == nil {
		return outcome.Fail[*domain.OrderRequest](outcome.CodeNotFound, "Solicitud no encontrada")
	}
	return outcome.Succeed(request, "Solicitud obtenida correctamente")
}

type CreateOrderRequestUseCase struct {
	repo    port.OrderRequestRepository
	handler errorhandler.Classifier
}

func NewCreateOrderRequestUseCase(repo port.OrderRequestRepository, handler errorhandler.Classifier) (*CreateOrderRequestUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &CreateOrderRequestUseCase{repo: repo, handler: handler}, nil
}

func (uc *CreateOrderRequestUseCase) Execute(ctx context.Context, input domain.CreateOrderRequestInput) outcome.Outcome[*domain.OrderRequest] {
	cmd, err := domain.NewCreateOrderRequestCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.OrderRequest](uc.handler, err, "registrar la solicitud", "Error al registrar la solicitud")
	}
	request, err := uc.repo.Create(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.OrderRequest](uc.handler, err, "registrar la solicitud", "Error al registrar la solicitud")
	}
	slog.Info("order request created", slog.Int("companyId", cmd.CompanyID()))
	return outcome.Succeed(request, "Solicitud registrada correctamente")
}

type ReviewOrderRequestUseCase struct {
	repo    port.OrderRequestRepository
	handler errorhandler.Classifier
}

func NewReviewOrderRequestUseCase(repo port.OrderRequestRepository, handler errorhandler.Classifier) (*ReviewOrderRequestUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &ReviewOrderRequestUseCase{repo: repo, handler: handler}, nil
}

func (uc *ReviewOrderRequestUseCase) Execute(ctx context.Context, rawID any, input domain.ReviewOrderRequestInput) outcome.Outcome[*domain.OrderRequest] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.OrderRequest](outcome.CodeInvalidParams, messageInvalidRequestID)
	}
	input.RequestID = id
	cmd, err := domain.NewReviewOrderRequestCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.OrderRequest](uc.handler, err, "revisar la solicitud", "Error al revisar la solicitud")
	}
	request, err := uc.repo.Review(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.OrderRequest](uc.handler, err, "revisar la solicitud", "Error al revisar la solicitud")
	}
	message := "Solicitud aprobada correctamente"
	if cmd.Decision() == domain.ReviewRejected {
		message = "Solicitud rechazada correctamente"
	}
	return outcome.Succeed(request, message)
}
