package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackerMobility/internal/modules/customers/domain"
	"trackerMobility/internal/shared/transport"
)

func TestCompanyHTTPRepository_UpdateEchoesCommandOnEmptyAck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/companies/5" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"ruc":"20123456789"`) {
			t.Fatalf("unexpected body: %s", body)
		}
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	repo := NewCompanyHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	cmd, err := domain.NewSaveCompanyCommand(domain.SaveCompanyInput{CompanyID: 5, BusinessName: "ACME", RUC: "20123456789", Email: "a@acme.pe"})
	if err != nil {
		t.Fatalf("unexpected command error: %v", err)
	}
	company, err := repo.Update(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.ID != 5 || company.BusinessName != "ACME" {
		t.Fatalf("unexpected company: %+v", company)
	}
}

func TestCompanyHTTPRepository_FindByIDMissingRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":null}`)
	}))
	defer server.Close()

	repo := NewCompanyHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	company, err := repo.FindByID(context.Background(), 2)
	if err != nil || company != nil {
		t.Fatalf("expected nil company, got %+v err=%v", company, err)
	}
}
