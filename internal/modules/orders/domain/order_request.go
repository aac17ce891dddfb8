package domain

import (
	"strings"

	"trackerMobility/internal/shared/normalization"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// OrderRequest is a client company's request for a new verification.
type OrderRequest struct {
	ID              int           `json:"id"`
	Code            string        `json:"code"`
	CompanyID       int           `json:"companyId"`
	CompanyName     string        `json:"companyName"`
	ClientName      string        `json:"clientName"`
	ClientDocument  string        `json:"clientDocument"`
	Address         string        `json:"address"`
	District        string        `json:"district"`
	Phone           string        `json:"phone"`
	Notes           string        `json:"notes"`
	Status          RequestStatus `json:"status"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	OrderID         int           `json:"orderId,omitempty"`
	CreatedAt       string        `json:"createdAt"`
}

func NormalizeOrderRequest(raw map[string]any) (OrderRequest, bool) {
	if raw == nil {
		return OrderRequest{}, false
	}
	id, ok := normalization.ParseIdentifier(raw["id"])
	if !ok {
		return OrderRequest{}, false
	}
	request := OrderRequest{
		ID:              id,
		Code:            normalization.AsString(raw["code"]),
		CompanyID:       normalization.AsInt(raw["companyId"]),
		CompanyName:     normalization.AsString(raw["companyName"]),
		ClientName:      normalization.AsString(raw["clientName"]),
		ClientDocument:  normalization.AsString(raw["clientDocument"]),
		Address:         normalization.AsString(raw["address"]),
		District:        normalization.AsString(raw["district"]),
		Phone:           normalization.AsString(raw["phone"]),
		Notes:           normalization.AsString(raw["notes"]),
		Status:          RequestStatus(strings.ToUpper(normalization.AsString(raw["status"]))),
		RejectionReason: normalization.AsString(raw["rejectionReason"]),
		OrderID:         normalization.AsInt(raw["orderId"]),
		CreatedAt:       normalization.AsString(raw["createdAt"]),
	}
	if company := normalization.MapFromPayload(raw["company"]); company != nil {
		if request.CompanyID == 0 {
			request.CompanyID = normalization.AsInt(company["id"])
		}
		if request.CompanyName == "" {
			request.CompanyName = normalization.AsString(company["businessName"])
		}
	}
	if request.Status == "" {
		request.Status = RequestStatusPending
	}
	return request, true
}

func BuildOrderRequestList(items []any) []OrderRequest {
	result := make([]OrderRequest, 0, len(items))
	for _, item := range items {
		if request, ok := NormalizeOrderRequest(normalization.MapFromPayload(item)); ok {
			result = append(result, request)
		}
	}
	return result
}
