package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerMobility/internal/modules/reports/application/usecase"
	"trackerMobility/internal/modules/reports/domain"
)

type memoryReports struct {
	summaries   []domain.ReportSummary
	interviewed []domain.UpdateLandlordInterviewCommand
}

func (m *memoryReports) FindAllSummaries(context.Context) ([]domain.ReportSummary, error) {
	return m.summaries, nil
}

func (m *memoryReports) FindByID(_ context.Context, id int) (*domain.Report, error) {
	for _, summary := range m.summaries {
		if summary.ID == id {
			return &domain.Report{ReportSummary: summary}, nil
		}
	}
	return nil, nil
}

func (m *memoryReports) UpdateReport(_ context.Context, cmd domain.UpdateReportCommand) (*domain.Report, error) {
	return &domain.Report{ReportSummary: domain.ReportSummary{ID: cmd.ReportID(), FinalResult: cmd.FinalResult()}}, nil
}

func (m *memoryReports) UpdateLandlordInterview(_ context.Context, cmd domain.UpdateLandlordInterviewCommand) (*domain.LandlordInterview, error) {
	m.interviewed = append(m.interviewed, cmd)
	return &domain.LandlordInterview{OrderID: cmd.OrderID(), TenantName: cmd.TenantName()}, nil
}

func (m *memoryReports) Delete(context.Context, int) error { return nil }

func newTestServer(t *testing.T, repo *memoryReports) *echo.Echo {
	t.Helper()
	useCases, err := usecase.NewReportUseCases(repo, nil)
	require.NoError(t, err)
	e := echo.New()
	NewReportHandler(useCases, nil).Register(e.Group("/api/reports"))
	return e
}

func sampleReports() []domain.ReportSummary {
	return []domain.ReportSummary{
		{ID: 1, Code: "RPT-001", ClientName: "Juan Pérez", Status: domain.ReportStatusPending, CreatedAt: "2024-05-01T10:00:00Z", ObservationsCount: 1, UnresolvedObservations: 1},
		{ID: 2, Code: "RPT-002", ClientName: "Ana Soto", Status: domain.ReportStatusCompleted, FinalResult: domain.FinalResultConforme, IsComplete: true, CreatedAt: "2024-05-03T10:00:00Z"},
		{ID: 3, Code: "RPT-003", ClientName: "Juan Díaz", Status: domain.ReportStatusInReview, CreatedAt: "2024-06-01T10:00:00Z"},
	}
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListAppliesQueryCriteria(t *testing.T) {
	e := newTestServer(t, &memoryReports{summaries: sampleReports()})

	rec := serve(e, http.MethodGet, "/api/reports?search=juan&status=PENDING,IN_REVIEW&dateTo=2024-05-31", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool                   `json:"success"`
		Data    []domain.ReportSummary `json:"data"`
		Total   int                    `json:"total"`
		Stats   domain.ReportStats     `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "RPT-001", body.Data[0].Code)
	assert.Equal(t, 1, body.Stats.Pending)
	assert.Equal(t, 1, body.Stats.WithUnresolvedObservations)
}

func TestExportServesCSV(t *testing.T) {
	e := newTestServer(t, &memoryReports{summaries: sampleReports()})

	rec := serve(e, http.MethodGet, "/api/reports/export?status=COMPLETED", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "reportes.csv")
	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Código,Orden,Cliente"))
	assert.Contains(t, lines[1], `"RPT-002"`)

	empty := serve(e, http.MethodGet, "/api/reports/export?search=nadie", "")
	assert.Equal(t, http.StatusNoContent, empty.Code)
}

func TestGetMapsOutcomeCodes(t *testing.T) {
	e := newTestServer(t, &memoryReports{summaries: sampleReports()})

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/reports/2", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/reports/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/api/reports/abc", "").Code)
}

func TestUpdateLandlordInterviewUsesPathOrder(t *testing.T) {
	repo := &memoryReports{}
	e := newTestServer(t, repo)

	rec := serve(e, http.MethodPut, "/api/reports/interviews/5", `{"tenantName":" Juan ","isValid":"true"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.interviewed, 1)
	assert.Equal(t, 5, repo.interviewed[0].OrderID())
	assert.Equal(t, "Juan", repo.interviewed[0].TenantName())
	assert.False(t, repo.interviewed[0].IsValid())
}
