package usecase

import (
	"context"
	"log/slog"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

type UpdateReportUseCase struct {
	repo    port.ReportRepository
	handler errorhandler.Classifier
}

func NewUpdateReportUseCase(repo port.ReportRepository, handler errorhandler.Classifier) (*UpdateReportUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &UpdateReportUseCase{repo: repo, handler: handler}, nil
}

// Execute validates rawID, builds the command from input and sends it. The
// identifier in input is overridden by rawID.
func (uc *UpdateReportUseCase) Execute(ctx context.Context, rawID any, input domain.UpdateReportInput) outcome.Outcome[*domain.Report] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Report](outcome.CodeInvalidParams, messageInvalidReportID)
	}
	input.ReportID = id

	cmd, err := domain.NewUpdateReportCommand(input)
	if err != nil {
		slog.Warn("update report rejected", slog.Int("reportId", id), slog.Any("error", err))
		return errorhandler.Resolve[*domain.Report](uc.handler, err, actionUpdateReport, "Error al actualizar el reporte")
	}
	report, err := uc.repo.UpdateReport(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Report](uc.handler, err, actionUpdateReport, "Error al actualizar el reporte")
	}
	return outcome.Succeed(report, "Reporte actualizado correctamente")
}
