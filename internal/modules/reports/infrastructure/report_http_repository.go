package infrastructure

import (
	"context"
	"fmt"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/transport"
)

// ReportHTTPRepository implements port.ReportRepository over the upstream
// verification-report endpoints.
type ReportHTTPRepository struct {
	rest transport.Requester
}

var _ port.ReportRepository = (*ReportHTTPRepository)(nil)

func NewReportHTTPRepository(rest transport.Requester) *ReportHTTPRepository {
	return &ReportHTTPRepository{rest: rest}
}

func (r *ReportHTTPRepository) FindAllSummaries(ctx context.Context) ([]domain.ReportSummary, error) {
	payload, err := r.rest.Get(ctx, reportsPath, nil)
	if err != nil {
		return nil, err
	}
	return domain.BuildReportSummaryList(normalization.ItemsFromPayload(payload, "reports")), nil
}

func (r *ReportHTTPRepository) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	payload, err := r.rest.Get(ctx, reportPath(id), nil)
	if err != nil {
		return nil, err
	}
	report, ok := domain.NormalizeReport(normalization.MapFromPayload(payload))
	if !ok {
		return nil, nil
	}
	return &report, nil
}

func (r *ReportHTTPRepository) UpdateReport(ctx context.Context, cmd domain.UpdateReportCommand) (*domain.Report, error) {
	payload, err := r.rest.Put(ctx, reportPath(cmd.ReportID()), cmd.Payload())
	if err != nil {
		return nil, err
	}
	report, ok := domain.NormalizeReport(normalization.MapFromPayload(payload))
	if !ok {
		// Some deployments answer writes with an acknowledgement only.
		return &domain.Report{ReportSummary: domain.ReportSummary{ID: cmd.ReportID(), FinalResult: cmd.FinalResult()}}, nil
	}
	return &report, nil
}

func (r *ReportHTTPRepository) UpdateLandlordInterview(ctx context.Context, cmd domain.UpdateLandlordInterviewCommand) (*domain.LandlordInterview, error) {
	payload, err := r.rest.Put(ctx, landlordInterviewPath(cmd.OrderID()), cmd.Payload())
	if err != nil {
		return nil, err
	}
	interview, ok := domain.NormalizeLandlordInterview(normalization.MapFromPayload(payload))
	if !ok {
		interview = domain.LandlordInterview{
			OrderID:       cmd.OrderID(),
			TenantName:    cmd.TenantName(),
			LandlordName:  cmd.LandlordName(),
			LandlordPhone: cmd.LandlordPhone(),
			Relationship:  cmd.Relationship(),
			Comments:      cmd.Comments(),
			IsValid:       cmd.IsValid(),
		}
	}
	if interview.OrderID == 0 {
		interview.OrderID = cmd.OrderID()
	}
	return &interview, nil
}

func (r *ReportHTTPRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.rest.Delete(ctx, reportPath(id)); err != nil {
		return fmt.Errorf("delete report %d: %w", id, err)
	}
	return nil
}
