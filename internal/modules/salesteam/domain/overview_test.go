package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customers "trackerMobility/internal/modules/customers/domain"
	orders "trackerMobility/internal/modules/orders/domain"
)

func sampleOrders() []orders.OrderSummary {
	return []orders.OrderSummary{
		{ID: 1, CompanyID: 1, CompanyName: "ACME", Status: orders.OrderStatusCompleted},
		{ID: 2, CompanyID: 1, CompanyName: "ACME", Status: orders.OrderStatusAssigned},
		{ID: 3, CompanyID: 1, CompanyName: "ACME", Status: orders.OrderStatusCancelled},
		{ID: 4, CompanyID: 2, CompanyName: "Beta", Status: orders.OrderStatusInProgress},
	}
}

func TestBuildSalesOverviewGroupsPerCompany(t *testing.T) {
	directory := []customers.Company{{ID: 1, BusinessName: "ACME S.A.C."}, {ID: 3, BusinessName: "Gamma"}}

	overview := BuildSalesOverview(sampleOrders(), directory, orders.OrderFiltersPatch{})

	assert.Equal(t, orders.OrderStats{Total: 4, Pending: 1, InProgress: 1, Completed: 1, Cancelled: 1}, overview.Totals)
	require.Len(t, overview.Companies, 3)

	acme := overview.Companies[0]
	assert.Equal(t, "ACME S.A.C.", acme.CompanyName)
	assert.Equal(t, orders.OrderStats{Total: 3, Pending: 1, Completed: 1, Cancelled: 1}, acme.Stats)
	assert.Equal(t, 50.0, acme.CompletionRate)

	assert.Equal(t, "Beta", overview.Companies[1].CompanyName)
	assert.Equal(t, "Gamma", overview.Companies[2].CompanyName)
	assert.Zero(t, overview.Companies[2].Stats.Total)
}

func TestBuildSalesOverviewHonorsCompanyCriterion(t *testing.T) {
	companyID := 2
	overview := BuildSalesOverview(sampleOrders(), []customers.Company{{ID: 1}, {ID: 2, BusinessName: "Beta"}}, orders.OrderFiltersPatch{CompanyID: &companyID})

	require.Len(t, overview.Companies, 1)
	assert.Equal(t, 2, overview.Companies[0].CompanyID)
	assert.Equal(t, 1, overview.Totals.InProgress)
	assert.Equal(t, 2, overview.Criteria.CompanyID)
}
