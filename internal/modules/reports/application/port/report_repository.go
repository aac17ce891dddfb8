package port

import (
	"context"
	"errors"

	"trackerMobility/internal/modules/reports/domain"
)

//go:generate mockgen -source=report_repository.go -destination=mocks/mock_report_repository.go -package=mocks

var ErrRepositoryRequired = errors.New("report repository is required")

// ReportRepository reaches the upstream report endpoints. FindByID returns
// (nil, nil) when the upstream answers without a record.
type ReportRepository interface {
	FindAllSummaries(ctx context.Context) ([]domain.ReportSummary, error)
	FindByID(ctx context.Context, id int) (*domain.Report, error)
	UpdateReport(ctx context.Context, cmd domain.UpdateReportCommand) (*domain.Report, error)
	UpdateLandlordInterview(ctx context.Context, cmd domain.UpdateLandlordInterviewCommand) (*domain.LandlordInterview, error)
	Delete(ctx context.Context, id int) error
}
