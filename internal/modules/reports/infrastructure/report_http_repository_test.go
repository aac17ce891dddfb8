package infrastructure

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/transport"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *ReportHTTPRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewReportHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
}

func TestReportHTTPRepository_FindAllSummaries(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != reportsPath {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"data":[
			{"id":1,"code":"RPT-1","status":"pending","observations":[{"id":1,"resolved":false},{"id":2,"resolved":true}],"company":{"id":4,"businessName":"ACME"}},
			{"id":"x"},
			{"id":2,"code":"RPT-2","status":"COMPLETED","isComplete":true,"documentsCount":3}
		]}`)
	})

	reports, err := repo.FindAllSummaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 normalized reports, got %d", len(reports))
	}
	first := reports[0]
	if first.Status != domain.ReportStatusPending {
		t.Fatalf("expected upper-cased status, got %s", first.Status)
	}
	if first.ObservationsCount != 2 || first.UnresolvedObservations != 1 {
		t.Fatalf("unexpected observation counters: %+v", first)
	}
	if first.CompanyID != 4 || first.CompanyName != "ACME" {
		t.Fatalf("expected nested company to be flattened, got %+v", first)
	}
	if !reports[1].HasDocuments() || !reports[1].IsComplete {
		t.Fatalf("unexpected second report: %+v", reports[1])
	}
}

func TestReportHTTPRepository_FindByIDMissingBody(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":null}`)
	})

	report, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Fatalf("expected nil report, got %+v", report)
	}
}

func TestReportHTTPRepository_UpdateLandlordInterviewSendsPayload(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/verification-orders/1/landlord-interview" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if want := `"tenantName":"Juan"`; !strings.Contains(string(body), want) {
			t.Fatalf("payload %s does not contain %s", body, want)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	cmd, err := domain.NewUpdateLandlordInterviewCommand(domain.LandlordInterviewInput{OrderID: 1, TenantName: "Juan", IsValid: true})
	if err != nil {
		t.Fatalf("unexpected command error: %v", err)
	}
	interview, err := repo.UpdateLandlordInterview(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interview.OrderID != 1 || interview.TenantName != "Juan" || !interview.IsValid {
		t.Fatalf("expected command echo, got %+v", interview)
	}
}

func TestReportHTTPRepository_DeleteWrapsUpstreamError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := repo.Delete(context.Background(), 8)
	var responseErr *transport.ResponseError
	if !errors.As(err, &responseErr) || responseErr.Status != http.StatusNotFound {
		t.Fatalf("expected wrapped 404, got %v", err)
	}
}
