package domain

import (
	"strconv"

	"trackerMobility/internal/shared/filtering"
)

// ReportFilters is the full criteria set of the report list.
type ReportFilters struct {
	SearchText                string                 `json:"searchText"`
	Statuses                  []ReportStatus         `json:"statuses"`
	FinalResults              []FinalResult          `json:"finalResults"`
	DateFrom                  string                 `json:"dateFrom"`
	DateTo                    string                 `json:"dateTo"`
	CompanyID                 int                    `json:"companyId"`
	VerifierID                int                    `json:"verifierId"`
	Completeness              filtering.Completeness `json:"completeness"`
	HasObservations           bool                   `json:"hasObservations"`
	HasUnresolvedObservations bool                   `json:"hasUnresolvedObservations"`
	HasDocuments              bool                   `json:"hasDocuments"`
}

// ReportFiltersPatch carries the keys to replace; nil fields are untouched.
type ReportFiltersPatch struct {
	SearchText                *string
	Statuses                  *[]ReportStatus
	FinalResults              *[]FinalResult
	DateFrom                  *string
	DateTo                    *string
	CompanyID                 *int
	VerifierID                *int
	Completeness              *filtering.Completeness
	HasObservations           *bool
	HasUnresolvedObservations *bool
	HasDocuments              *bool
}

func DefaultReportFilters() ReportFilters {
	return ReportFilters{Completeness: filtering.CompletenessAll}
}

func MergeReportFilters(current ReportFilters, patch ReportFiltersPatch) ReportFilters {
	if patch.SearchText != nil {
		current.SearchText = *patch.SearchText
	}
	if patch.Statuses != nil {
		current.Statuses = *patch.Statuses
	}
	if patch.FinalResults != nil {
		current.FinalResults = *patch.FinalResults
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
	if patch.Completeness != nil {
		current.Completeness = *patch.Completeness
	}
	if patch.HasObservations != nil {
		current.HasObservations = *patch.HasObservations
	}
	if patch.HasUnresolvedObservations != nil {
		current.HasUnresolvedObservations = *patch.HasUnresolvedObservations
	}
	if patch.HasDocuments != nil {
		current.HasDocuments = *patch.HasDocuments
	}
	return current
}

// MatchReport applies every active criterion; all of them must hold.
func MatchReport(report ReportSummary, filters ReportFilters) bool {
	if !filtering.MatchesText(filters.SearchText,
		report.Code, report.OrderCode, report.ClientName, report.ClientDocument,
		report.CompanyName, report.VerifierName, report.Address) {
		return false
	}
	if !filtering.InSet(report.Status, filters.Statuses) {
		return false
	}
	if !filtering.InSet(report.FinalResult, filters.FinalResults) {
		return false
	}
	if !(filtering.DateRange{From: filters.DateFrom, To: filters.DateTo}).Contains(report.CreatedAt) {
		return false
	}
	if !filtering.MatchesID(report.CompanyID, filters.CompanyID) || !filtering.MatchesID(report.VerifierID, filters.VerifierID) {
		return false
	}
	if !filtering.ParseCompleteness(string(filters.Completeness)).Matches(report.IsComplete) {
		return false
	}
	return filtering.RequireFlag(filters.HasObservations, report.HasObservations()) &&
		filtering.RequireFlag(filters.HasUnresolvedObservations, report.HasUnresolvedObservations()) &&
		filtering.RequireFlag(filters.HasDocuments, report.HasDocuments())
}

// ReportStats aggregates a filtered report list.
type ReportStats struct {
	Total                      int                 `json:"total"`
	Pending                    int                 `json:"pending"`
	Completed                  int                 `json:"completed"`
	Complete                   int                 `json:"complete"`
	Incomplete                 int                 `json:"incomplete"`
	WithObservations           int                 `json:"withObservations"`
	WithUnresolvedObservations int                 `json:"withUnresolvedObservations"`
	WithDocuments              int                 `json:"withDocuments"`
	ByFinalResult              map[FinalResult]int `json:"byFinalResult"`
}

func ComputeReportStats(reports []ReportSummary) ReportStats {
	stats := ReportStats{Total: len(reports), ByFinalResult: make(map[FinalResult]int, len(FinalResults))}
	for _, result := range FinalResults {
		stats.ByFinalResult[result] = 0
	}
	for _, report := range reports {
		switch report.Status {
		case ReportStatusPending, ReportStatusInReview:
			stats.Pending++
		case ReportStatusCompleted:
			stats.Completed++
		}
		if report.IsComplete {
			stats.Complete++
		} else {
			stats.Incomplete++
		}
		if report.HasObservations() {
			stats.WithObservations++
		}
		if report.HasUnresolvedObservations() {
			stats.WithUnresolvedObservations++
		}
		if report.HasDocuments() {
			stats.WithDocuments++
		}
		if _, known := stats.ByFinalResult[report.FinalResult]; known {
			stats.ByFinalResult[report.FinalResult]++
		}
	}
	return stats
}

// ReportFilterEngine is the filter engine bound to report summaries.
type ReportFilterEngine = filtering.Engine[ReportSummary, ReportFilters, ReportFiltersPatch, ReportStats]

func NewReportFilterEngine(source []ReportSummary) *ReportFilterEngine {
	return filtering.NewEngine(filtering.Definition[ReportSummary, ReportFilters, ReportFiltersPatch, ReportStats]{
		Defaults: DefaultReportFilters,
		Match:    MatchReport,
		Merge:    MergeReportFilters,
		Stats:    ComputeReportStats,
	}, source)
}

// ReportExportColumns is the fixed column layout of the report CSV.
var ReportExportColumns = []filtering.Column[ReportSummary]{
	{Header: "Código", Value: func(r ReportSummary) string { return r.Code }},
	{Header: "Orden", Value: func(r ReportSummary) string { return r.OrderCode }},
	{Header: "Cliente", Value: func(r ReportSummary) string { return r.ClientName }},
	{Header: "Empresa", Value: func(r ReportSummary) string { return r.CompanyName }},
	{Header: "Verificador", Value: func(r ReportSummary) string { return r.VerifierName }},
	{Header: "Estado", Value: func(r ReportSummary) string { return string(r.Status) }},
	{Header: "Resultado", Value: func(r ReportSummary) string { return string(r.FinalResult) }},
	{Header: "Completo", Value: func(r ReportSummary) string { return yesNo(r.IsComplete) }},
	{Header: "Observaciones", Value: func(r ReportSummary) string { return strconv.Itoa(r.ObservationsCount) }},
	{Header: "Fecha", Value: func(r ReportSummary) string { return r.CreatedAt }},
}

func yesNo(value bool) string {
	if value {
		return "Sí"
	}
	return "No"
}
