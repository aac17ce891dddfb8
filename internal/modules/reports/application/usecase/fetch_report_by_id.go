package usecase

import (
	"context"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

type FetchReportByIDUseCase struct {
	repo    port.ReportRepository
	handler errorhandler.Classifier
}

func NewFetchReportByIDUseCase(repo port.ReportRepository, handler errorhandler.Classifier) (*FetchReportByIDUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchReportByIDUseCase{repo: repo, handler: handler}, nil
}

// Execute accepts the identifier as sent by the caller (number or string).
func (uc *FetchReportByIDUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[*domain.Report] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Report](outcome.CodeInvalidParams, messageInvalidReportID)
	}
	report, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return errorhandler.Resolve[*domain.Report](uc.handler, err, actionFetchReport, "Error al obtener el reporte")
	}
	if report == nil {
		return outcome.Fail[*domain.Report](outcome.CodeNotFound, "Reporte no encontrado")
	}
	return outcome.Succeed(report, "Reporte obtenido correctamente")
}
