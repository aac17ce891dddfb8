package infrastructure

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trackerMobility/internal/modules/verifiers/domain"
	"trackerMobility/internal/shared/transport"
)

func TestVerifierHTTPRepository_UpdateStatusFallsBackToCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/verifiers/3/status" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	repo := NewVerifierHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	cmd, err := domain.NewUpdateVerifierStatusCommand(domain.UpdateVerifierStatusInput{VerifierID: 3, Status: "SUSPENDED"})
	if err != nil {
		t.Fatalf("unexpected command error: %v", err)
	}
	verifier, err := repo.UpdateStatus(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verifier.ID != 3 || verifier.Status != domain.VerifierStatusSuspended {
		t.Fatalf("unexpected verifier: %+v", verifier)
	}
}

func TestVerifierHTTPRepository_FindAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"verifiers":[{"id":1,"fullName":"Rosa","status":"inactive"},{"fullName":"no id"}]}`)
	}))
	defer server.Close()

	repo := NewVerifierHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	verifiers, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verifiers) != 1 || verifiers[0].Status != domain.VerifierStatusInactive {
		t.Fatalf("unexpected verifiers: %+v", verifiers)
	}
}

func TestVerifierHTTPRepository_DeleteWrapsResponseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"tiene órdenes asignadas"}`)
	}))
	defer server.Close()

	repo := NewVerifierHTTPRepository(transport.NewClient(transport.Config{BaseURL: server.URL}))
	err := repo.Delete(context.Background(), 8)
	var responseErr *transport.ResponseError
	if !errors.As(err, &responseErr) || responseErr.Status != http.StatusConflict {
		t.Fatalf("expected wrapped response error, got %v", err)
	}
}
