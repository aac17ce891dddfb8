package domain

import (
	"strings"

	"trackerMobility/internal/shared/normalization"
)

// ReportStatus tracks a verification report through review.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusInReview  ReportStatus = "IN_REVIEW"
	ReportStatusCompleted ReportStatus = "COMPLETED"
)

// FinalResult is the verifier's verdict on the visited address.
type FinalResult string

const (
	FinalResultConforme   FinalResult = "CONFORME"
	FinalResultNoConforme FinalResult = "NO_CONFORME"
	FinalResultObservado  FinalResult = "OBSERVADO"
)

// FinalResults lists the accepted verdicts in display order.
var FinalResults = []FinalResult{FinalResultConforme, FinalResultNoConforme, FinalResultObservado}

// ReportSummary is the list projection of a report.
type ReportSummary struct {
	ID                     int          `json:"id"`
	Code                   string       `json:"code"`
	OrderID                int          `json:"orderId"`
	OrderCode              string       `json:"orderCode"`
	ClientName             string       `json:"clientName"`
	ClientDocument         string       `json:"clientDocument"`
	Address                string       `json:"address"`
	CompanyID              int          `json:"companyId"`
	CompanyName            string       `json:"companyName"`
	VerifierID             int          `json:"verifierId"`
	VerifierName           string       `json:"verifierName"`
	Status                 ReportStatus `json:"status"`
	FinalResult            FinalResult  `json:"finalResult,omitempty"`
	IsComplete             bool         `json:"isComplete"`
	ObservationsCount      int          `json:"observationsCount"`
	UnresolvedObservations int          `json:"unresolvedObservations"`
	DocumentsCount         int          `json:"documentsCount"`
	CreatedAt              string       `json:"createdAt"`
	VisitDate              string       `json:"visitDate,omitempty"`
}

func (r ReportSummary) HasObservations() bool           { return r.ObservationsCount > 0 }
func (r ReportSummary) HasUnresolvedObservations() bool { return r.UnresolvedObservations > 0 }
func (r ReportSummary) HasDocuments() bool              { return r.DocumentsCount > 0 }

type Observation struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Resolved    bool   `json:"resolved"`
}

type Document struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url"`
}

type LandlordInterview struct {
	OrderID       int    `json:"orderId"`
	TenantName    string `json:"tenantName"`
	LandlordName  string `json:"landlordName"`
	LandlordPhone string `json:"landlordPhone"`
	Relationship  string `json:"relationship"`
	Comments      string `json:"comments"`
	IsValid       bool   `json:"isValid"`
}

// Report is the detail view, including the nested collections.
type Report struct {
	ReportSummary
	Summary           string             `json:"summary"`
	Observations      []Observation      `json:"observations"`
	Documents         []Document         `json:"documents"`
	Glossary          []string           `json:"glossary"`
	Casuistics        []string           `json:"casuistics"`
	LandlordInterview *LandlordInterview `json:"landlordInterview,omitempty"`
}

// NormalizeReportSummary maps an upstream report object. Records without a
// positive id are rejected.
func NormalizeReportSummary(raw map[string]any) (ReportSummary, bool) {
	if raw == nil {
		return ReportSummary{}, false
	}
	id, ok := normalization.ParseIdentifier(raw["id"])
	if !ok {
		return ReportSummary{}, false
	}
	summary := ReportSummary{
		ID:             id,
		Code:           normalization.AsString(raw["code"]),
		OrderID:        normalization.AsInt(firstPresent(raw, "orderId", "verificationOrderId")),
		OrderCode:      normalization.AsString(raw["orderCode"]),
		ClientName:     normalization.AsString(raw["clientName"]),
		ClientDocument: normalization.AsString(raw["clientDocument"]),
		Address:        normalization.AsString(raw["address"]),
		CompanyID:      normalization.AsInt(raw["companyId"]),
		CompanyName:    normalization.AsString(raw["companyName"]),
		VerifierID:     normalization.AsInt(raw["verifierId"]),
		VerifierName:   normalization.AsString(raw["verifierName"]),
		Status:         ReportStatus(strings.ToUpper(normalization.AsString(raw["status"]))),
		FinalResult:    FinalResult(strings.ToUpper(normalization.AsString(raw["finalResult"]))),
		IsComplete:     normalization.AsBool(raw["isComplete"]),
		CreatedAt:      normalization.AsString(raw["createdAt"]),
		VisitDate:      normalization.AsString(raw["visitDate"]),
	}

	if order := normalization.MapFromPayload(raw["order"]); order != nil {
		if summary.OrderID == 0 {
			summary.OrderID = normalization.AsInt(order["id"])
		}
		if summary.OrderCode == "" {
			summary.OrderCode = normalization.AsString(order["code"])
		}
		if summary.ClientName == "" {
			summary.ClientName = normalization.AsString(order["clientName"])
		}
		if summary.Address == "" {
			summary.Address = normalization.AsString(order["address"])
		}
	}
	if company := normalization.MapFromPayload(raw["company"]); company != nil {
		if summary.CompanyID == 0 {
			summary.CompanyID = normalization.AsInt(company["id"])
		}
		if summary.CompanyName == "" {
			summary.CompanyName = normalization.AsString(company["businessName"])
		}
	}
	if verifier := normalization.MapFromPayload(raw["verifier"]); verifier != nil {
		if summary.VerifierID == 0 {
			summary.VerifierID = normalization.AsInt(verifier["id"])
		}
		if summary.VerifierName == "" {
			summary.VerifierName = normalization.AsString(verifier["fullName"])
		}
	}
	if summary.Status == "" {
		summary.Status = ReportStatusPending
	}

	observations := normalization.AsInterfaceSlice(raw["observations"])
	summary.ObservationsCount = normalization.AsInt(raw["observationsCount"])
	if summary.ObservationsCount == 0 {
		summary.ObservationsCount = len(observations)
	}
	summary.UnresolvedObservations = normalization.AsInt(raw["unresolvedObservations"])
	if summary.UnresolvedObservations == 0 {
		for _, item := range observations {
			if entry := normalization.MapFromPayload(item); entry != nil && !normalization.AsBool(entry["resolved"]) {
				summary.UnresolvedObservations++
			}
		}
	}
	summary.DocumentsCount = normalization.AsInt(raw["documentsCount"])
	if summary.DocumentsCount == 0 {
		summary.DocumentsCount = len(normalization.AsInterfaceSlice(raw["documents"]))
	}
	return summary, true
}

// BuildReportSummaryList keeps the recognizable report records in order.
func BuildReportSummaryList(items []any) []ReportSummary {
	result := make([]ReportSummary, 0, len(items))
	for _, item := range items {
		if summary, ok := NormalizeReportSummary(normalization.MapFromPayload(item)); ok {
			result = append(result, summary)
		}
	}
	return result
}

// NormalizeReport maps the upstream detail payload.
func NormalizeReport(raw map[string]any) (Report, bool) {
	summary, ok := NormalizeReportSummary(raw)
	if !ok {
		return Report{}, false
	}
	report := Report{
		ReportSummary: summary,
		Summary:       normalization.AsString(raw["summary"]),
		Observations:  make([]Observation, 0),
		Documents:     make([]Document, 0),
		Glossary:      normalization.AsStringSlice(raw["glossary"]),
		Casuistics:    normalization.AsStringSlice(raw["casuistics"]),
	}
	if report.Glossary == nil {
		report.Glossary = []string{}
	}
	if report.Casuistics == nil {
		report.Casuistics = []string{}
	}
	for _, item := range normalization.AsInterfaceSlice(raw["observations"]) {
		switch typed := item.(type) {
		case string:
			if text := normalization.AsString(typed); text != "" {
				report.Observations = append(report.Observations, Observation{Description: text})
			}
		case map[string]any:
			description := normalization.AsString(firstPresent(typed, "description", "value"))
			if description == "" {
				continue
			}
			report.Observations = append(report.Observations, Observation{
				ID:          normalization.AsInt(typed["id"]),
				Description: description,
				Resolved:    normalization.AsBool(typed["resolved"]),
			})
		}
	}
	for _, item := range normalization.AsInterfaceSlice(raw["documents"]) {
		entry := normalization.MapFromPayload(item)
		if entry == nil {
			continue
		}
		report.Documents = append(report.Documents, Document{
			ID:   normalization.AsInt(entry["id"]),
			Name: normalization.AsString(firstPresent(entry, "name", "fileName")),
			Type: normalization.AsString(entry["type"]),
			URL:  normalization.AsString(firstPresent(entry, "url", "fileUrl")),
		})
	}
	if interview, ok := NormalizeLandlordInterview(normalization.MapFromPayload(raw["landlordInterview"])); ok {
		report.LandlordInterview = &interview
	}
	return report, true
}

// NormalizeLandlordInterview maps an interview object; a missing tenant
// name means there is no interview yet.
func NormalizeLandlordInterview(raw map[string]any) (LandlordInterview, bool) {
	if raw == nil {
		return LandlordInterview{}, false
	}
	interview := LandlordInterview{
		OrderID:       normalization.AsInt(raw["orderId"]),
		TenantName:    normalization.AsString(raw["tenantName"]),
		LandlordName:  normalization.AsString(raw["landlordName"]),
		LandlordPhone: normalization.AsString(raw["landlordPhone"]),
		Relationship:  normalization.AsString(raw["relationship"]),
		Comments:      normalization.AsString(raw["comments"]),
		IsValid:       normalization.StrictTrue(raw["isValid"]),
	}
	if interview.TenantName == "" {
		return LandlordInterview{}, false
	}
	return interview, true
}

func firstPresent(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value
		}
	}
	return nil
}
