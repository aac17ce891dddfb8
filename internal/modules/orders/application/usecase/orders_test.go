package usecase

import (
	"context"
	"errors"
	"testing"

	"trackerMobility/internal/modules/orders/application/port"
	"trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/outcome"
)

type fakeOrders struct {
	orders   []domain.OrderSummary
	err      error
	assigned []domain.AssignVerifierCommand
	deleted  []int
}

func (f *fakeOrders) FindAll(context.Context) ([]domain.OrderSummary, error) {
	return f.orders, f.err
}

func (f *fakeOrders) FindByID(_ context.Context, id int) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, order := range f.orders {
		if order.ID == id {
			return &domain.Order{OrderSummary: order}, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) AssignVerifier(_ context.Context, cmd domain.AssignVerifierCommand) (*domain.Order, error) {
	f.assigned = append(f.assigned, cmd)
	return &domain.Order{OrderSummary: domain.OrderSummary{ID: cmd.OrderID(), VerifierID: cmd.VerifierID(), Status: domain.OrderStatusAssigned}}, f.err
}

func (f *fakeOrders) UpdateStatus(_ context.Context, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error) {
	return &domain.Order{OrderSummary: domain.OrderSummary{ID: cmd.OrderID(), Status: cmd.Status()}}, f.err
}

func (f *fakeOrders) Delete(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeRequests struct {
	reviewed []domain.ReviewOrderRequestCommand
}

func (f *fakeRequests) FindAll(context.Context) ([]domain.OrderRequest, error) {
	return []domain.OrderRequest{{ID: 1}}, nil
}

func (f *fakeRequests) FindByID(context.Context, int) (*domain.OrderRequest, error) { return nil, nil }

func (f *fakeRequests) Create(_ context.Context, cmd domain.CreateOrderRequestCommand) (*domain.OrderRequest, error) {
	return &domain.OrderRequest{ID: 10, CompanyID: cmd.CompanyID(), ClientName: cmd.ClientName()}, nil
}

func (f *fakeRequests) Review(_ context.Context, cmd domain.ReviewOrderRequestCommand) (*domain.OrderRequest, error) {
	f.reviewed = append(f.reviewed, cmd)
	return &domain.OrderRequest{ID: cmd.RequestID(), Status: domain.RequestStatus(cmd.Decision())}, nil
}

func TestOrderUseCasesRequireRepository(t *testing.T) {
	if _, err := NewOrderUseCases(nil, nil); !errors.Is(err, port.ErrRepositoryRequired) {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
	if _, err := NewOrderRequestUseCases(nil, nil); !errors.Is(err, port.ErrRepositoryRequired) {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
}

func TestFetchAllOrdersMessage(t *testing.T) {
	cases := []struct {
		orders  []domain.OrderSummary
		message string
	}{
		{orders: nil, message: "Se obtuvieron 0 órdenes"},
		{orders: []domain.OrderSummary{{ID: 1}}, message: "Se obtuvo 1 orden"},
		{orders: []domain.OrderSummary{{ID: 1}, {ID: 2}, {ID: 3}}, message: "Se obtuvieron 3 órdenes"},
	}
	for _, tc := range cases {
		set, _ := NewOrderUseCases(&fakeOrders{orders: tc.orders}, nil)
		result := set.FetchAll.Execute(context.Background())
		if !result.Success || result.Message != tc.message {
			t.Fatalf("unexpected outcome: %+v", result)
		}
		if result.Data == nil {
			t.Fatal("expected non-nil data slice")
		}
	}
}

func TestAssignVerifier(t *testing.T) {
	repo := &fakeOrders{}
	set, _ := NewOrderUseCases(repo, nil)

	invalid := set.AssignVerifier.Execute(context.Background(), "0", domain.AssignVerifierInput{VerifierID: 2})
	if invalid.Code != outcome.CodeInvalidParams {
		t.Fatalf("expected INVALID_PARAMS, got %s", invalid.Code)
	}

	missingVerifier := set.AssignVerifier.Execute(context.Background(), 4, domain.AssignVerifierInput{})
	if missingVerifier.Success || missingVerifier.Code != outcome.CodeError {
		t.Fatalf("expected ERROR for missing verifier, got %+v", missingVerifier)
	}
	if len(repo.assigned) != 0 {
		t.Fatal("invalid command must not reach the repository")
	}

	ok := set.AssignVerifier.Execute(context.Background(), "4", domain.AssignVerifierInput{VerifierID: 2})
	if !ok.Success || ok.Data.VerifierID != 2 || ok.Data.ID != 4 {
		t.Fatalf("unexpected outcome: %+v", ok)
	}
}

func TestFetchOrderByIDAndDelete(t *testing.T) {
	repo := &fakeOrders{orders: []domain.OrderSummary{{ID: 3}}}
	set, _ := NewOrderUseCases(repo, nil)

	if got := set.FetchByID.Execute(context.Background(), 9).Code; got != outcome.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", got)
	}
	if got := set.FetchByID.Execute(context.Background(), 3).Code; got != outcome.CodeSuccess {
		t.Fatalf("expected SUCCESS, got %s", got)
	}
	if got := set.Delete.Execute(context.Background(), 3).Code; got != outcome.CodeDeleted {
		t.Fatalf("expected DELETED, got %s", got)
	}

	repo.err = errors.New("upstream down")
	failed := set.Delete.Execute(context.Background(), 3)
	if failed.Code != outcome.CodeError || failed.Message != "upstream down" {
		t.Fatalf("unexpected failure outcome: %+v", failed)
	}
}

func TestReviewOrderRequest(t *testing.T) {
	repo := &fakeRequests{}
	set, _ := NewOrderRequestUseCases(repo, nil)

	rejected := set.Review.Execute(context.Background(), 5, domain.ReviewOrderRequestInput{Decision: "REJECTED"})
	if rejected.Success || len(repo.reviewed) != 0 {
		t.Fatalf("rejection without reason must fail before the repository: %+v", rejected)
	}

	approved := set.Review.Execute(context.Background(), 5, domain.ReviewOrderRequestInput{Decision: "APPROVED"})
	if !approved.Success || approved.Data.Status != domain.RequestStatusApproved {
		t.Fatalf("unexpected outcome: %+v", approved)
	}
	if got := set.FetchByID.Execute(context.Background(), 5).Code; got != outcome.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", got)
	}
}
