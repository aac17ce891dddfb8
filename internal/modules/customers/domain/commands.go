package domain

import (
	"net/mail"

	"trackerMobility/internal/shared/validation"
)

const rucLength = 11

type SaveCompanyInput struct {
	CompanyID    int    `json:"companyId"`
	BusinessName string `json:"businessName"`
	RUC          string `json:"ruc"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	Active       *bool  `json:"active"`
}

// SaveCompanyCommand backs both create and update; companyID is zero when
// creating.
type SaveCompanyCommand struct {
	companyID    int
	businessName string
	ruc          string
	email        string
	phone        string
	address      string
	contactName  string
	active       bool
}

func NewSaveCompanyCommand(input SaveCompanyInput) (SaveCompanyCommand, error) {
	businessName, err := validation.RequireText("businessName", input.BusinessName)
	if err != nil {
		return SaveCompanyCommand{}, err
	}
	ruc, err := validation.RequireText("ruc", input.RUC)
	if err != nil {
		return SaveCompanyCommand{}, err
	}
	if !isDigits(ruc, rucLength) {
		return SaveCompanyCommand{}, validation.Invalid("ruc", "debe tener 11 dígitos")
	}
	email, err := validation.RequireText("email", input.Email)
	if err != nil {
		return SaveCompanyCommand{}, err
	}
	if address, err := mail.ParseAddress(email); err != nil || address.Address != email {
		return SaveCompanyCommand{}, validation.Invalid("email", "no tiene un formato válido")
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	return SaveCompanyCommand{
		companyID:    input.CompanyID,
		businessName: businessName,
		ruc:          ruc,
		email:        email,
		phone:        validation.Optional(input.Phone),
		address:      validation.Optional(input.Address),
		contactName:  validation.Optional(input.ContactName),
		active:       active,
	}, nil
}

func (c SaveCompanyCommand) CompanyID() int       { return c.companyID }
func (c SaveCompanyCommand) BusinessName() string { return c.businessName }
func (c SaveCompanyCommand) RUC() string          { return c.ruc }

func (c SaveCompanyCommand) Payload() map[string]any {
	return map[string]any{
		"businessName": c.businessName,
		"ruc":          c.ruc,
		"email":        c.email,
		"phone":        c.phone,
		"address":      c.address,
		"contactName":  c.contactName,
		"active":       c.active,
	}
}

// Company echoes the command when the upstream acknowledges without a body.
func (c SaveCompanyCommand) Company() Company {
	return Company{
		ID:           c.companyID,
		BusinessName: c.businessName,
		RUC:          c.ruc,
		Email:        c.email,
		Phone:        c.phone,
		Address:      c.address,
		ContactName:  c.contactName,
		Active:       c.active,
	}
}

func isDigits(value string, length int) bool {
	if len(value) != length {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
