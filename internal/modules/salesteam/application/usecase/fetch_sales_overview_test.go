package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customers "trackerMobility/internal/modules/customers/domain"
	orders "trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/outcome"
)

type stubOrders struct {
	list []orders.OrderSummary
	err  error
}

func (s stubOrders) FindAll(context.Context) ([]orders.OrderSummary, error) { return s.list, s.err }
func (s stubOrders) FindByID(context.Context, int) (*orders.Order, error)   { return nil, nil }
func (s stubOrders) AssignVerifier(context.Context, orders.AssignVerifierCommand) (*orders.Order, error) {
	return nil, nil
}
func (s stubOrders) UpdateStatus(context.Context, orders.UpdateOrderStatusCommand) (*orders.Order, error) {
	return nil, nil
}
func (s stubOrders) Delete(context.Context, int) error { return nil }

type stubCompanies struct {
	list []customers.Company
	err  error
}

func (s stubCompanies) FindAll(context.Context) ([]customers.Company, error) { return s.list, s.err }
func (s stubCompanies) FindByID(context.Context, int) (*customers.Company, error) {
	return nil, nil
}
func (s stubCompanies) Create(context.Context, customers.SaveCompanyCommand) (*customers.Company, error) {
	return nil, nil
}
func (s stubCompanies) Update(context.Context, customers.SaveCompanyCommand) (*customers.Company, error) {
	return nil, nil
}
func (s stubCompanies) Delete(context.Context, int) error { return nil }

func TestFetchSalesOverviewRequiresOrders(t *testing.T) {
	_, err := NewFetchSalesOverviewUseCase(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrOrdersRequired)
}

func TestFetchSalesOverviewToleratesDirectoryFailure(t *testing.T) {
	uc, err := NewFetchSalesOverviewUseCase(
		stubOrders{list: []orders.OrderSummary{{ID: 1, CompanyID: 4, CompanyName: "ACME", Status: orders.OrderStatusPending}}},
		stubCompanies{err: errors.New("directory down")},
		nil, nil,
	)
	require.NoError(t, err)

	result := uc.Execute(context.Background(), orders.OrderFiltersPatch{})
	require.True(t, result.Success)
	assert.Equal(t, "Se obtuvo 1 empresa", result.Message)
	assert.Equal(t, 1, result.Data.Totals.Pending)
}

func TestFetchSalesOverviewOrderFailure(t *testing.T) {
	uc, err := NewFetchSalesOverviewUseCase(stubOrders{err: errors.New("timeout")}, stubCompanies{}, nil, nil)
	require.NoError(t, err)

	result := uc.Execute(context.Background(), orders.OrderFiltersPatch{})
	assert.False(t, result.Success)
	assert.Equal(t, outcome.CodeError, result.Code)
	assert.Equal(t, "timeout", result.Message)
}
