package domain

import (
	"trackerMobility/internal/shared/filtering"
)

type CompanyFilters struct {
	SearchText string `json:"searchText"`
	ActiveOnly bool   `json:"activeOnly"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
}

type CompanyFiltersPatch struct {
	SearchText *string
	ActiveOnly *bool
	DateFrom   *string
	DateTo     *string
}

func MergeCompanyFilters(current CompanyFilters, patch CompanyFiltersPatch) CompanyFilters {
	if patch.SearchText != nil {
		current.SearchText = *patch.SearchText
	}
	if patch.ActiveOnly != nil {
		current.ActiveOnly = *patch.ActiveOnly
	}
	if patch.DateFrom != nil {
		current.DateFrom = *patch.DateFrom
	}
	if patch.DateTo != nil {
		current.DateTo = *patch.DateTo
	}
	return current
}

func MatchCompany(company Company, filters CompanyFilters) bool {
	return filtering.MatchesText(filters.SearchText, company.BusinessName, company.RUC, company.Email, company.ContactName) &&
		filtering.RequireFlag(filters.ActiveOnly, company.Active) &&
		filtering.DateRange{From: filters.DateFrom, To: filters.DateTo}.Contains(company.CreatedAt)
}

type CompanyStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

func ComputeCompanyStats(companies []Company) CompanyStats {
	stats := CompanyStats{Total: len(companies)}
	for _, company := range companies {
		if company.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats
}

type CompanyFilterEngine = filtering.Engine[Company, CompanyFilters, CompanyFiltersPatch, CompanyStats]

func NewCompanyFilterEngine(source []Company) *CompanyFilterEngine {
	return filtering.NewEngine(filtering.Definition[Company, CompanyFilters, CompanyFiltersPatch, CompanyStats]{
		Defaults: func() CompanyFilters { return CompanyFilters{} },
		Match:    MatchCompany,
		Merge:    MergeCompanyFilters,
		Stats:    ComputeCompanyStats,
	}, source)
}

var CompanyExportColumns = []filtering.Column[Company]{
	{Header: "Razón social", Value: func(c Company) string { return c.BusinessName }},
	{Header: "RUC", Value: func(c Company) string { return c.RUC }},
	{Header: "Correo", Value: func(c Company) string { return c.Email }},
	{Header: "Teléfono", Value: func(c Company) string { return c.Phone }},
	{Header: "Contacto", Value: func(c Company) string { return c.ContactName }},
	{Header: "Activa", Value: func(c Company) string {
		if c.Active {
			return "Sí"
		}
		return "No"
	}},
}
