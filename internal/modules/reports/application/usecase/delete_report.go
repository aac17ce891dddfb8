package usecase

import (
	"context"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

type DeleteReportUseCase struct {
	repo    port.ReportRepository
	handler errorhandler.Classifier
}

func NewDeleteReportUseCase(repo port.ReportRepository, handler errorhandler.Classifier) (*DeleteReportUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &DeleteReportUseCase{repo: repo, handler: handler}, nil
}

func (uc *DeleteReportUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[struct{}] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[struct{}](outcome.CodeInvalidParams, messageInvalidReportID)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return errorhandler.Resolve[struct{}](uc.handler, err, actionDeleteReport, "Error al eliminar el reporte")
	}
	return outcome.Deleted[struct{}]("Reporte eliminado correctamente")
}
