package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/transport"
)

func TestOrderHTTPRepository_AssignVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/verification-orders/4/assign" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"verifierId":7`) {
			t.Fatalf("unexpected body: %s", body)
		}
		_, _ = io.WriteString(w, `{"data":{"id":4,"code":"ORD-4","status":"assigned","verifier":{"id":7,"fullName":"Rosa"}}}`)
	}))
	defer server.Close()

	repo := NewOrderHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	cmd, err := domain.NewAssignVerifierCommand(domain.AssignVerifierInput{OrderID: 4, VerifierID: 7})
	if err != nil {
		t.Fatalf("unexpected command error: %v", err)
	}
	order, err := repo.AssignVerifier(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusAssigned || order.VerifierName != "Rosa" || order.VerifierID != 7 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderRequestHTTPRepository_FindAllUnwrapsItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"items":[{"id":1,"clientName":"Ana","company":{"id":2,"businessName":"ACME"}},{"id":0}]}}`)
	}))
	defer server.Close()

	repo := NewOrderRequestHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	requests, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 || requests[0].CompanyName != "ACME" || requests[0].Status != domain.RequestStatusPending {
		t.Fatalf("unexpected requests: %+v", requests)
	}
}
