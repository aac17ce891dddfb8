package domain

import (
	"cmp"
	"math"
	"slices"

	customers "trackerMobility/internal/modules/customers/domain"
	orders "trackerMobility/internal/modules/orders/domain"
)

// CompanyPerformance summarizes the orders of one client company.
type CompanyPerformance struct {
	CompanyID      int               `json:"companyId"`
	CompanyName    string            `json:"companyName"`
	Stats          orders.OrderStats `json:"stats"`
	CompletionRate float64           `json:"completionRate"`
}

type SalesOverview struct {
	Criteria  orders.OrderFilters  `json:"criteria"`
	Totals    orders.OrderStats    `json:"totals"`
	Companies []CompanyPerformance `json:"companies"`
}

// BuildSalesOverview filters source with patch and groups the result per
// company. Companies from the directory without matching orders are listed
// with empty stats unless the criteria pin a single company.
func BuildSalesOverview(source []orders.OrderSummary, directory []customers.Company, patch orders.OrderFiltersPatch) SalesOverview {
	engine := orders.NewOrderFilterEngine(source)
	engine.UpdateCriteria(patch)
	criteria := engine.Criteria()
	filtered := engine.Result()
	overview := SalesOverview{Criteria: criteria, Totals: engine.Stats()}

	groups := make(map[int][]orders.OrderSummary)
	names := make(map[int]string)
	for _, order := range filtered {
		groups[order.CompanyID] = append(groups[order.CompanyID], order)
		if names[order.CompanyID] == "" {
			names[order.CompanyID] = order.CompanyName
		}
	}
	for _, company := range directory {
		if criteria.CompanyID > 0 && company.ID != criteria.CompanyID {
			continue
		}
		if _, ok := groups[company.ID]; !ok {
			groups[company.ID] = nil
		}
		names[company.ID] = company.BusinessName
	}

	overview.Companies = make([]CompanyPerformance, 0, len(groups))
	for companyID, group := range groups {
		// group is already filtered; re-running the criteria keeps it intact
		engine.SetSource(group)
		stats := engine.Stats()
		overview.Companies = append(overview.Companies, CompanyPerformance{
			CompanyID:      companyID,
			CompanyName:    names[companyID],
			Stats:          stats,
			CompletionRate: completionRate(stats),
		})
	}
	slices.SortFunc(overview.Companies, func(a, b CompanyPerformance) int {
		if c := cmp.Compare(b.Stats.Total, a.Stats.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.CompanyName, b.CompanyName)
	})
	return overview
}

// completionRate is the completed share of non-cancelled orders, as a
// percentage rounded to one decimal.
func completionRate(stats orders.OrderStats) float64 {
	active := stats.Total - stats.Cancelled
	if active <= 0 {
		return 0
	}
	return math.Round(float64(stats.Completed)/float64(active)*1000) / 10
}
