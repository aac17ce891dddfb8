package usecase

import (
	"context"
	"log/slog"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/outcome"
)

const (
	actionFetchReports = "obtener los reportes"
	actionFetchReport  = "obtener el reporte"
	actionUpdateReport = "actualizar el reporte"
	actionInterview    = "actualizar la entrevista al arrendador"
	actionDeleteReport = "eliminar el reporte"

	messageInvalidReportID = "El identificador del reporte no es válido"
	messageInvalidOrderID  = "El identificador de la orden no es válido"
)

type FetchAllReportsUseCase struct {
	repo    port.ReportRepository
	handler errorhandler.Classifier
}

func NewFetchAllReportsUseCase(repo port.ReportRepository, handler errorhandler.Classifier) (*FetchAllReportsUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchAllReportsUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchAllReportsUseCase) Execute(ctx context.Context) outcome.Outcome[[]domain.ReportSummary] {
	reports, err := uc.repo.FindAllSummaries(ctx)
	if err != nil {
		return errorhandler.Resolve[[]domain.ReportSummary](uc.handler, err, actionFetchReports, "Error al obtener los reportes")
	}
	if reports == nil {
		reports = []domain.ReportSummary{}
	}
	slog.Debug("reports fetched", slog.Int("count", len(reports)))
	return outcome.Succeed(reports, outcome.CountMessage(len(reports), "reporte", "reportes"))
}
