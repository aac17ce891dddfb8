package domain

import (
	"trackerMobility/internal/shared/filtering"
)

type OrderFilters struct {
	SearchText string        `json:"searchText"`
	Statuses   []OrderStatus `json:"statuses"`
	DateFrom   string        `json:"dateFrom"`
	DateTo     string        `json:"dateTo"`
	CompanyID  int           `json:"companyId"`
	VerifierID int           `json:"verifierId"`
}

type OrderFiltersPatch struct {
	SearchText *string
	Statuses   *[]OrderStatus
	DateFrom   *string
	DateTo     *string
	CompanyID  *int
	VerifierID *int
}

func DefaultOrderFilters() OrderFilters { return OrderFilters{} }

func MergeOrderFilters(current OrderFilters, patch OrderFiltersPatch) OrderFilters {
	if patch.SearchText != nil {
		current.SearchText = *patch.SearchText
	}
	if patch.Statuses != nil {
		current.Statuses = *patch.Statuses
	}
	if patch.DateFrom != nil {
		current.DateFrom = *patch.DateFrom
	}
	if patch.DateTo != nil {
		current.DateTo = *patch.DateTo
	}
	if patch.CompanyID != nil {
		current.CompanyID = *patch.CompanyID
	}
	if patch.VerifierID != nil {
		current.VerifierID = *patch.VerifierID
	}
	return current
}

func MatchOrder(order OrderSummary, filters OrderFilters) bool {
	return filtering.MatchesText(filters.SearchText,
		order.Code, order.ClientName, order.ClientDocument, order.CompanyName, order.VerifierName, order.Address) &&
		filtering.InSet(order.Status, filters.Statuses) &&
		filtering.DateRange{From: filters.DateFrom, To: filters.DateTo}.Contains(order.CreatedAt) &&
		filtering.MatchesID(order.CompanyID, filters.CompanyID) &&
		filtering.MatchesID(order.VerifierID, filters.VerifierID)
}

// OrderStats buckets orders by progress; ASSIGNED still counts as pending.
type OrderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

func ComputeOrderStats(orders []OrderSummary) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case OrderStatusPending, OrderStatusAssigned:
			stats.Pending++
		case OrderStatusInProgress:
			stats.InProgress++
		case OrderStatusCompleted:
			stats.Completed++
		case OrderStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

type OrderFilterEngine = filtering.Engine[OrderSummary, OrderFilters, OrderFiltersPatch, OrderStats]

func NewOrderFilterEngine(source []OrderSummary) *OrderFilterEngine {
	return filtering.NewEngine(filtering.Definition[OrderSummary, OrderFilters, OrderFiltersPatch, OrderStats]{
		Defaults: DefaultOrderFilters,
		Match:    MatchOrder,
		Merge:    MergeOrderFilters,
		Stats:    ComputeOrderStats,
	}, source)
}

var OrderExportColumns = []filtering.Column[OrderSummary]{
	{Header: "Código", Value: func(o OrderSummary) string { return o.Code }},
	{Header: "Cliente", Value: func(o OrderSummary) string { return o.ClientName }},
	{Header: "Documento", Value: func(o OrderSummary) string { return o.ClientDocument }},
	{Header: "Dirección", Value: func(o OrderSummary) string { return o.Address }},
	{Header: "Distrito", Value: func(o OrderSummary) string { return o.District }},
	{Header: "Empresa", Value: func(o OrderSummary) string { return o.CompanyName }},
	{Header: "Verificador", Value: func(o OrderSummary) string { return o.VerifierName }},
	{Header: "Estado", Value: func(o OrderSummary) string { return string(o.Status) }},
	{Header: "Fecha", Value: func(o OrderSummary) string { return o.CreatedAt }},
}
