package domain

import (
	"strings"

	"trackerMobility/internal/shared/normalization"
)

type VerifierStatus string

const (
	VerifierStatusActive    VerifierStatus = "ACTIVE"
	VerifierStatusInactive  VerifierStatus = "INACTIVE"
	VerifierStatusSuspended VerifierStatus = "SUSPENDED"
)

var VerifierStatuses = []VerifierStatus{VerifierStatusActive, VerifierStatusInactive, VerifierStatusSuspended}

// Verifier is a field agent who visits the addresses under verification.
type Verifier struct {
	ID              int            `json:"id"`
	FullName        string         `json:"fullName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Document        string         `json:"document"`
	District        string         `json:"district"`
	Status          VerifierStatus `json:"status"`
	AssignedOrders  int            `json:"assignedOrders"`
	CompletedOrders int            `json:"completedOrders"`
	CreatedAt       string         `json:"createdAt"`
}

func NormalizeVerifier(raw map[string]any) (Verifier, bool) {
	if raw == nil {
		return Verifier{}, false
	}
	id, ok := normalization.ParseIdentifier(raw["id"])
	if !ok {
		return Verifier{}, false
	}
	verifier := Verifier{
		ID:              id,
		FullName:        normalization.AsString(raw["fullName"]),
		Email:           normalization.AsString(raw["email"]),
		Phone:           normalization.AsString(raw["phone"]),
		Document:        normalization.AsString(raw["document"]),
		District:        normalization.AsString(raw["district"]),
		Status:          VerifierStatus(strings.ToUpper(normalization.AsString(raw["status"]))),
		AssignedOrders:  normalization.AsInt(raw["assignedOrders"]),
		CompletedOrders: normalization.AsInt(raw["completedOrders"]),
		CreatedAt:       normalization.AsString(raw["createdAt"]),
	}
	if verifier.FullName == "" {
		first := normalization.AsString(raw["firstName"])
		last := normalization.AsString(raw["lastName"])
		verifier.FullName = strings.TrimSpace(first + " " + last)
	}
	if verifier.AssignedOrders == 0 {
		verifier.AssignedOrders = len(normalization.AsInterfaceSlice(raw["orders"]))
	}
	if verifier.Status == "" {
		verifier.Status = VerifierStatusActive
	}
	return verifier, true
}

func BuildVerifierList(items []any) []Verifier {
	result := make([]Verifier, 0, len(items))
	for _, item := range items {
		if verifier, ok := NormalizeVerifier(normalization.MapFromPayload(item)); ok {
			result = append(result, verifier)
		}
	}
	return result
}
