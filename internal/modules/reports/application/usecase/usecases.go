package usecase

import (
	"errors"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/shared/errorhandler"
)

// ReportUseCases groups the report use-cases sharing one repository.
type ReportUseCases struct {
	FetchAll          *FetchAllReportsUseCase
	FetchByID         *FetchReportByIDUseCase
	Update            *UpdateReportUseCase
	LandlordInterview *UpdateLandlordInterviewUseCase
	Delete            *DeleteReportUseCase
}

func NewReportUseCases(repo port.ReportRepository, handler errorhandler.Classifier) (*ReportUseCases, error) {
	fetchAll, err := NewFetchAllReportsUseCase(repo, handler)
	if err != nil {
		return nil, err
	}
	fetchByID, errByID := NewFetchReportByIDUseCase(repo, handler)
	update, errUpdate := NewUpdateReportUseCase(repo, handler)
	interview, errInterview := NewUpdateLandlordInterviewUseCase(repo, handler)
	remove, errDelete := NewDeleteReportUseCase(repo, handler)
	if err := errors.Join(errByID, errUpdate, errInterview, errDelete); err != nil {
		return nil, err
	}
	return &ReportUseCases{
		FetchAll:          fetchAll,
		FetchByID:         fetchByID,
		Update:            update,
		LandlordInterview: interview,
		Delete:            remove,
	}, nil
}
