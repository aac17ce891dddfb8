package usecase

import (
	"context"
	"log/slog"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/outcome"
)

type UpdateLandlordInterviewUseCase struct {
	repo    port.ReportRepository
	handler errorhandler.Classifier
}

func NewUpdateLandlordInterviewUseCase(repo port.ReportRepository, handler errorhandler.Classifier) (*UpdateLandlordInterviewUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &UpdateLandlordInterviewUseCase{repo: repo, handler: handler}, nil
}

func (uc *UpdateLandlordInterviewUseCase) Execute(ctx context.Context, input domain.LandlordInterviewInput) outcome.Outcome[*domain.LandlordInterview] {
	if input.OrderID <= 0 {
		return outcome.Fail[*domain.LandlordInterview](outcome.CodeInvalidParams, messageInvalidOrderID)
	}
	cmd, err := domain.NewUpdateLandlordInterviewCommand(input)
	if err != nil {
		slog.Warn("landlord interview rejected", slog.Int("orderId", input.OrderID), slog.Any("error", err))
		return errorhandler.Resolve[*domain.LandlordInterview](uc.handler, err, actionInterview, "Error al actualizar la entrevista")
	}
	interview, err := uc.repo.UpdateLandlordInterview(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.LandlordInterview](uc.handler, err, actionInterview, "Error al actualizar la entrevista")
	}
	return outcome.Succeed(interview, "Entrevista al arrendador actualizada correctamente")
}
