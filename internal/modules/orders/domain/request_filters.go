package domain

import "trackerMobility/internal/shared/filtering"

type OrderRequestFilters struct {
	SearchText string          `json:"searchText"`
	Statuses   []RequestStatus `json:"statuses"`
	DateFrom   string          `json:"dateFrom"`
	DateTo     string          `json:"dateTo"`
	CompanyID  int             `json:"companyId"`
}

type OrderRequestFiltersPatch struct {
	SearchText *string
	Statuses   *[]RequestStatus
	DateFrom   *string
	DateTo     *string
	CompanyID  *int
}

type OrderRequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func MergeOrderRequestFilters(current OrderRequestFilters, patch OrderRequestFiltersPatch) OrderRequestFilters {
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
	return current
}

func MatchOrderRequest(request OrderRequest, filters OrderRequestFilters) bool {
	return filtering.MatchesText(filters.SearchText, request.Code, request.ClientName, request.ClientDocument, request.CompanyName, request.Address) &&
		filtering.InSet(request.Status, filters.Statuses) &&
		filtering.DateRange{From: filters.DateFrom, To: filters.DateTo}.Contains(request.CreatedAt) &&
		filtering.MatchesID(request.CompanyID, filters.CompanyID)
}

func ComputeOrderRequestStats(requests []OrderRequest) OrderRequestStats {
	stats := OrderRequestStats{Total: len(requests)}
	for _, request := range requests {
		switch request.Status {
		case RequestStatusPending:
			stats.Pending++
		case RequestStatusApproved:
			stats.Approved++
		case RequestStatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

type OrderRequestFilterEngine = filtering.Engine[OrderRequest, OrderRequestFilters, OrderRequestFiltersPatch, OrderRequestStats]

func NewOrderRequestFilterEngine(source []OrderRequest) *OrderRequestFilterEngine {
	return filtering.NewEngine(filtering.Definition[OrderRequest, OrderRequestFilters, OrderRequestFiltersPatch, OrderRequestStats]{
		Defaults: func() OrderRequestFilters { return OrderRequestFilters{} },
		Match:    MatchOrderRequest,
		Merge:    MergeOrderRequestFilters,
		Stats:    ComputeOrderRequestStats,
	}, source)
}

var OrderRequestExportColumns = []filtering.Column[OrderRequest]{
	{Header: "Código", Value: func(r OrderRequest) string { return r.Code }},
	{Header: "Empresa", Value: func(r OrderRequest) string { return r.CompanyName }},
	{Header: "Cliente", Value: func(r OrderRequest) string { return r.ClientName }},
	{Header: "Documento", Value: func(r OrderRequest) string { return r.ClientDocument }},
	{Header: "Dirección", Value: func(r OrderRequest) string { return r.Address }},
	{Header: "Estado", Value: func(r OrderRequest) string { return string(r.Status) }},
	{Header: "Fecha", Value: func(r OrderRequest) string { return r.CreatedAt }},
}
