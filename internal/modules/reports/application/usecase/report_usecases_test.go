package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trackerMobility/internal/modules/reports/application/port"
	"trackerMobility/internal/modules/reports/application/port/mocks"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/transport"
	"trackerMobility/internal/shared/validation"
)

type stubClassifier struct {
	calls   int
	lastErr error
	result  outcome.Result
}

func (s *stubClassifier) Handle(err error, _ string) outcome.Result {
	s.calls++
	s.lastErr = err
	return s.result
}

type ReportUseCasesSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *mocks.MockReportRepository
	ctx  context.Context
}

func TestReportUseCasesSuite(t *testing.T) {
	suite.Run(t, new(ReportUseCasesSuite))
}

func (s *ReportUseCasesSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockReportRepository(s.ctrl)
	s.ctx = context.Background()
}

func (s *ReportUseCasesSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportUseCasesSuite) TestConstructorsRequireRepository() {
	_, err := NewFetchAllReportsUseCase(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)
	_, err = NewFetchReportByIDUseCase(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)
	_, err = NewUpdateReportUseCase(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)
	_, err = NewUpdateLandlordInterviewUseCase(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)
	_, err = NewDeleteReportUseCase(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)
	_, err = NewReportUseCases(nil, nil)
	s.ErrorIs(err, port.ErrRepositoryRequired)

	set, err := NewReportUseCases(s.repo, nil)
	s.NoError(err)
	s.NotNil(set.LandlordInterview)
}

func (s *ReportUseCasesSuite) TestFetchAll() {
	s.Run("two reports yields pluralized success", func() {
		s.repo.EXPECT().FindAllSummaries(gomock.Any()).Return([]domain.ReportSummary{{ID: 1}, {ID: 2}}, nil)
		uc, _ := NewFetchAllReportsUseCase(s.repo, nil)

		result := uc.Execute(s.ctx)

		s.True(result.Success)
		s.Equal(outcome.CodeSuccess, result.Code)
		s.Len(result.Data, 2)
		s.Contains(result.Message, "2")
		s.Equal("Se obtuvieron 2 reportes", result.Message)
	})

	s.Run("single report uses singular noun", func() {
		s.repo.EXPECT().FindAllSummaries(gomock.Any()).Return([]domain.ReportSummary{{ID: 1}}, nil)
		uc, _ := NewFetchAllReportsUseCase(s.repo, nil)

		s.Equal("Se obtuvo 1 reporte", uc.Execute(s.ctx).Message)
	})

	s.Run("rejection without handler degrades to ERROR", func() {
		s.repo.EXPECT().FindAllSummaries(gomock.Any()).Return(nil, errors.New("socket closed"))
		uc, _ := NewFetchAllReportsUseCase(s.repo, nil)

		result := uc.Execute(s.ctx)

		s.False(result.Success)
		s.Equal(outcome.CodeError, result.Code)
		s.Equal("socket closed", result.Message)
	})

	s.Run("rejection with handler is classified", func() {
		classifier := &stubClassifier{result: outcome.Result{Code: outcome.CodeServerError, Message: "caído"}}
		upstream := &transport.ResponseError{Status: http.StatusInternalServerError}
		s.repo.EXPECT().FindAllSummaries(gomock.Any()).Return(nil, upstream)
		uc, _ := NewFetchAllReportsUseCase(s.repo, classifier)

		result := uc.Execute(s.ctx)

		s.Equal(outcome.CodeServerError, result.Code)
		s.Equal("caído", result.Message)
		s.Equal(1, classifier.calls)
		s.Same(upstream, classifier.lastErr)
	})
}

func (s *ReportUseCasesSuite) TestFetchByIDRejectsInvalidIdentifiers() {
	uc, _ := NewFetchReportByIDUseCase(s.repo, nil)
	for _, raw := range []any{0, -5, "abc", nil, 2.5} {
		result := uc.Execute(s.ctx, raw)
		s.False(result.Success, "id %v", raw)
		s.Equal(outcome.CodeInvalidParams, result.Code, "id %v", raw)
	}
}

func (s *ReportUseCasesSuite) TestFetchByID() {
	s.Run("missing record yields NOT_FOUND", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
		uc, _ := NewFetchReportByIDUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, 3)

		s.False(result.Success)
		s.Equal(outcome.CodeNotFound, result.Code)
	})

	s.Run("numeric string identifier is accepted", func() {
		report := &domain.Report{ReportSummary: domain.ReportSummary{ID: 7}}
		s.repo.EXPECT().FindByID(gomock.Any(), 7).Return(report, nil)
		uc, _ := NewFetchReportByIDUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, "7")

		s.True(result.Success)
		s.Same(report, result.Data)
	})
}

func (s *ReportUseCasesSuite) TestUpdateLandlordInterview() {
	s.Run("valid input succeeds", func() {
		s.repo.EXPECT().UpdateLandlordInterview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.UpdateLandlordInterviewCommand) (*domain.LandlordInterview, error) {
				s.Equal(1, cmd.OrderID())
				s.Equal("Juan", cmd.TenantName())
				return &domain.LandlordInterview{OrderID: 1, TenantName: "Juan"}, nil
			})
		uc, _ := NewUpdateLandlordInterviewUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, domain.LandlordInterviewInput{OrderID: 1, TenantName: " Juan "})

		s.True(result.Success)
		s.Equal(outcome.CodeSuccess, result.Code)
		s.Equal("Juan", result.Data.TenantName)
	})

	s.Run("blank tenant without handler yields ERROR", func() {
		uc, _ := NewUpdateLandlordInterviewUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, domain.LandlordInterviewInput{OrderID: 1, TenantName: ""})

		s.False(result.Success)
		s.Equal(outcome.CodeError, result.Code)
		s.Contains(result.Message, "tenantName")
	})

	s.Run("blank tenant with handler shares the error path", func() {
		classifier := &stubClassifier{result: outcome.Result{Code: outcome.CodeUnknownError, Message: "inesperado"}}
		uc, _ := NewUpdateLandlordInterviewUseCase(s.repo, classifier)

		result := uc.Execute(s.ctx, domain.LandlordInterviewInput{OrderID: 1, TenantName: "  "})

		s.False(result.Success)
		s.Equal(outcome.CodeUnknownError, result.Code)
		s.ErrorIs(classifier.lastErr, validation.ErrInvalidCommand)
	})

	s.Run("missing order id is INVALID_PARAMS", func() {
		uc, _ := NewUpdateLandlordInterviewUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, domain.LandlordInterviewInput{TenantName: "Juan"})

		s.Equal(outcome.CodeInvalidParams, result.Code)
	})
}

func (s *ReportUseCasesSuite) TestUpdateReport() {
	s.Run("bogus final result never reaches the repository", func() {
		uc, _ := NewUpdateReportUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, 1, domain.UpdateReportInput{FinalResult: "BOGUS"})

		s.False(result.Success)
		s.Equal(outcome.CodeError, result.Code)
		s.Contains(result.Message, "CONFORME")
	})

	s.Run("valid command is forwarded with the path identifier", func() {
		s.repo.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.UpdateReportCommand) (*domain.Report, error) {
				s.Equal(9, cmd.ReportID())
				s.Equal(domain.FinalResultObservado, cmd.FinalResult())
				s.Equal([]string{"x", "y"}, cmd.Observations())
				return &domain.Report{ReportSummary: domain.ReportSummary{ID: 9}}, nil
			})
		uc, _ := NewUpdateReportUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, "9", domain.UpdateReportInput{
			ReportID:     1,
			FinalResult:  "OBSERVADO",
			Observations: validation.ListEntries{validation.ValueEntry{Value: "x"}, validation.StringEntry("y"), nil},
		})

		s.True(result.Success)
		s.Equal(9, result.Data.ID)
	})

	s.Run("invalid path identifier", func() {
		uc, _ := NewUpdateReportUseCase(s.repo, nil)
		s.Equal(outcome.CodeInvalidParams, uc.Execute(s.ctx, "x", domain.UpdateReportInput{}).Code)
	})
}

func (s *ReportUseCasesSuite) TestDeleteReport() {
	s.Run("success yields DELETED", func() {
		s.repo.EXPECT().Delete(gomock.Any(), 4).Return(nil)
		uc, _ := NewDeleteReportUseCase(s.repo, nil)

		result := uc.Execute(s.ctx, 4)

		s.True(result.Success)
		s.Equal(outcome.CodeDeleted, result.Code)
	})

	s.Run("upstream 404 goes through the handler", func() {
		classifier := &stubClassifier{result: outcome.Result{Code: outcome.CodeNotFound, Message: "no"}}
		s.repo.EXPECT().Delete(gomock.Any(), 4).Return(&transport.ResponseError{Status: http.StatusNotFound})
		uc, _ := NewDeleteReportUseCase(s.repo, classifier)

		s.Equal(outcome.CodeNotFound, uc.Execute(s.ctx, 4).Code)
	})
}
