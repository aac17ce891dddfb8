package domain

import (
	"strconv"

	"trackerMobility/internal/shared/filtering"
)

type VerifierFilters struct {
	SearchText        string           `json:"searchText"`
	Statuses          []VerifierStatus `json:"statuses"`
	District          string           `json:"district"`
	DateFrom          string           `json:"dateFrom"`
	DateTo            string           `json:"dateTo"`
	HasAssignedOrders bool             `json:"hasAssignedOrders"`
}

type VerifierFiltersPatch struct {
	SearchText        *string
	Statuses          *[]VerifierStatus
	District          *string
	DateFrom          *string
	DateTo            *string
	HasAssignedOrders *bool
}

func MergeVerifierFilters(current VerifierFilters, patch VerifierFiltersPatch) VerifierFilters {
	if patch.SearchText != nil {
		current.SearchText = *patch.SearchText
	}
	if patch.Statuses != nil {
		current.Statuses = *patch.Statuses
	}
	if patch.District != nil {
		current.District = *patch.District
	}
	if patch.DateFrom != nil {
		current.DateFrom = *patch.DateFrom
	}
	if patch.DateTo != nil {
		current.DateTo = *patch.DateTo
	}
	if patch.HasAssignedOrders != nil {
		current.HasAssignedOrders = *patch.HasAssignedOrders
	}
	return current
}

func MatchVerifier(verifier Verifier, filters VerifierFilters) bool {
	if district := filtering.NormalizeText(filters.District); district != "" && filtering.NormalizeText(verifier.District) != district {
		return false
	}
	return filtering.MatchesText(filters.SearchText, verifier.FullName, verifier.Email, verifier.Phone, verifier.Document) &&
		filtering.InSet(verifier.Status, filters.Statuses) &&
		filtering.DateRange{From: filters.DateFrom, To: filters.DateTo}.Contains(verifier.CreatedAt) &&
		filtering.RequireFlag(filters.HasAssignedOrders, verifier.AssignedOrders > 0)
}

type VerifierStats struct {
	Total              int `json:"total"`
	Active             int `json:"active"`
	Inactive           int `json:"inactive"`
	Suspended          int `json:"suspended"`
	WithAssignedOrders int `json:"withAssignedOrders"`
}

func ComputeVerifierStats(verifiers []Verifier) VerifierStats {
	stats := VerifierStats{Total: len(verifiers)}
	for _, verifier := range verifiers {
		switch verifier.Status {
		case VerifierStatusActive:
			stats.Active++
		case VerifierStatusInactive:
			stats.Inactive++
		case VerifierStatusSuspended:
			stats.Suspended++
		}
		if verifier.AssignedOrders > 0 {
			stats.WithAssignedOrders++
		}
	}
	return stats
}

type VerifierFilterEngine = filtering.Engine[Verifier, VerifierFilters, VerifierFiltersPatch, VerifierStats]

func NewVerifierFilterEngine(source []Verifier) *VerifierFilterEngine {
	return filtering.NewEngine(filtering.Definition[Verifier, VerifierFilters, VerifierFiltersPatch, VerifierStats]{
		Defaults: func() VerifierFilters { return VerifierFilters{} },
		Match:    MatchVerifier,
		Merge:    MergeVerifierFilters,
		Stats:    ComputeVerifierStats,
	}, source)
}

var VerifierExportColumns = []filtering.Column[Verifier]{
	{Header: "Nombre", Value: func(v Verifier) string { return v.FullName }},
	{Header: "Correo", Value: func(v Verifier) string { return v.Email }},
	{Header: "Teléfono", Value: func(v Verifier) string { return v.Phone }},
	{Header: "Documento", Value: func(v Verifier) string { return v.Document }},
	{Header: "Distrito", Value: func(v Verifier) string { return v.District }},
	{Header: "Estado", Value: func(v Verifier) string { return string(v.Status) }},
	{Header: "Órdenes asignadas", Value: func(v Verifier) string { return strconv.Itoa(v.AssignedOrders) }},
}
