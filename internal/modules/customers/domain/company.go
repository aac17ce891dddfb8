package domain

import (
	"trackerMobility/internal/shared/normalization"
)

// Company is a client business that requests verifications.
type Company struct {
	ID           int    `json:"id"`
	BusinessName string `json:"businessName"`
	RUC          string `json:"ruc"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt"`
}

func NormalizeCompany(raw map[string]any) (Company, bool) {
	if raw == nil {
		return Company{}, false
	}
	id, ok := normalization.ParseIdentifier(raw["id"])
	if !ok {
		return Company{}, false
	}
	company := Company{
		ID:           id,
		BusinessName: normalization.AsString(raw["businessName"]),
		RUC:          normalization.AsString(raw["ruc"]),
		Email:        normalization.AsString(raw["email"]),
		Phone:        normalization.AsString(raw["phone"]),
		Address:      normalization.AsString(raw["address"]),
		ContactName:  normalization.AsString(raw["contactName"]),
		Active:       true,
		CreatedAt:    normalization.AsString(raw["createdAt"]),
	}
	if company.BusinessName == "" {
		company.BusinessName = normalization.AsString(raw["name"])
	}
	if value, present := raw["active"]; present {
		company.Active = normalization.AsBool(value)
	} else if value, present := raw["isActive"]; present {
		company.Active = normalization.AsBool(value)
	}
	return company, true
}

func BuildCompanyList(items []any) []Company {
	result := make([]Company, 0, len(items))
	for _, item := range items {
		if company, ok := NormalizeCompany(normalization.MapFromPayload(item)); ok {
			result = append(result, company)
		}
	}
	return result
}
