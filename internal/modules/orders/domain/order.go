package domain

import (
	"strings"

	"trackerMobility/internal/shared/normalization"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusAssigned   OrderStatus = "ASSIGNED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// OrderSummary is the list projection of a verification order.
type OrderSummary struct {
	ID             int         `json:"id"`
	Code           string      `json:"code"`
	ClientName     string      `json:"clientName"`
	ClientDocument string      `json:"clientDocument"`
	Address        string      `json:"address"`
	District       string      `json:"district"`
	CompanyID      int         `json:"companyId"`
	CompanyName    string      `json:"companyName"`
	VerifierID     int         `json:"verifierId"`
	VerifierName   string      `json:"verifierName"`
	Status         OrderStatus `json:"status"`
	CreatedAt      string      `json:"createdAt"`
	ScheduledDate  string      `json:"scheduledDate,omitempty"`
}

type Order struct {
	OrderSummary
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
	ReportID int    `json:"reportId,omitempty"`
}

func NormalizeOrderSummary(raw map[string]any) (OrderSummary, bool) {
	if raw == nil {
		return OrderSummary{}, false
	}
	id, ok := normalization.ParseIdentifier(raw["id"])
	if !ok {
		return OrderSummary{}, false
	}
	order := OrderSummary{
		ID:             id,
		Code:           normalization.AsString(raw["code"]),
		ClientName:     normalization.AsString(raw["clientName"]),
		ClientDocument: normalization.AsString(raw["clientDocument"]),
		Address:        normalization.AsString(raw["address"]),
		District:       normalization.AsString(raw["district"]),
		CompanyID:      normalization.AsInt(raw["companyId"]),
		CompanyName:    normalization.AsString(raw["companyName"]),
		VerifierID:     normalization.AsInt(raw["verifierId"]),
		VerifierName:   normalization.AsString(raw["verifierName"]),
		Status:         OrderStatus(strings.ToUpper(normalization.AsString(raw["status"]))),
		CreatedAt:      normalization.AsString(raw["createdAt"]),
		ScheduledDate:  normalization.AsString(raw["scheduledDate"]),
	}
	if company := normalization.MapFromPayload(raw["company"]); company != nil {
		if order.CompanyID == 0 {
			order.CompanyID = normalization.AsInt(company["id"])
		}
		if order.CompanyName == "" {
			order.CompanyName = normalization.AsString(company["businessName"])
		}
	}
	if verifier := normalization.MapFromPayload(raw["verifier"]); verifier != nil {
		if order.VerifierID == 0 {
			order.VerifierID = normalization.AsInt(verifier["id"])
		}
		if order.VerifierName == "" {
			order.VerifierName = normalization.AsString(verifier["fullName"])
		}
	}
	if order.Status == "" {
		order.Status = OrderStatusPending
	}
	return order, true
}

func BuildOrderSummaryList(items []any) []OrderSummary {
	result := make([]OrderSummary, 0, len(items))
	for _, item := range items {
		if order, ok := NormalizeOrderSummary(normalization.MapFromPayload(item)); ok {
			result = append(result, order)
		}
	}
	return result
}

func NormalizeOrder(raw map[string]any) (Order, bool) {
	summary, ok := NormalizeOrderSummary(raw)
	if !ok {
		return Order{}, false
	}
	order := Order{
		OrderSummary: summary,
		Phone:        normalization.AsString(raw["phone"]),
		Notes:        normalization.AsString(raw["notes"]),
		ReportID:     normalization.AsInt(raw["reportId"]),
	}
	if report := normalization.MapFromPayload(raw["report"]); report != nil && order.ReportID == 0 {
		order.ReportID = normalization.AsInt(report["id"])
	}
	return order, true
}
