package domain

import (
	"net/mail"

	"trackerMobility/internal/shared/validation"
)

type CreateVerifierInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	District string `json:"district"`
}

type CreateVerifierCommand struct {
	fullName string
	email    string
	phone    string
	document string
	district string
}

func NewCreateVerifierCommand(input CreateVerifierInput) (CreateVerifierCommand, error) {
	fullName, err := validation.RequireText("fullName", input.FullName)
	if err != nil {
		return CreateVerifierCommand{}, err
	}
	email, err := validation.RequireText("email", input.Email)
	if err != nil {
		return CreateVerifierCommand{}, err
	}
	if address, err := mail.ParseAddress(email); err != nil || address.Address != email {
		return CreateVerifierCommand{}, validation.Invalid("email", "no tiene un formato válido")
	}
	phone, err := validation.RequireText("phone", input.Phone)
	if err != nil {
		return CreateVerifierCommand{}, err
	}
	document, err := validation.RequireText("document", input.Document)
	if err != nil {
		return CreateVerifierCommand{}, err
	}
	return CreateVerifierCommand{
		fullName: fullName,
		email:    email,
		phone:    phone,
		document: document,
		district: validation.Optional(input.District),
	}, nil
}

func (c CreateVerifierCommand) Email() string { return c.email }

func (c CreateVerifierCommand) Payload() map[string]any {
	return map[string]any{
		"fullName": c.fullName,
		"email":    c.email,
		"phone":    c.phone,
		"document": c.document,
		"district": c.district,
	}
}

type UpdateVerifierStatusInput struct {
	VerifierID int    `json:"verifierId"`
	Status     string `json:"status"`
}

type UpdateVerifierStatusCommand struct {
	verifierID int
	status     VerifierStatus
}

func NewUpdateVerifierStatusCommand(input UpdateVerifierStatusInput) (UpdateVerifierStatusCommand, error) {
	verifierID, err := validation.RequireID("verifierId", input.VerifierID)
	if err != nil {
		return UpdateVerifierStatusCommand{}, err
	}
	status, err := validation.RequireOneOf("status", input.Status, VerifierStatuses...)
	if err != nil {
		return UpdateVerifierStatusCommand{}, err
	}
	return UpdateVerifierStatusCommand{verifierID: verifierID, status: status}, nil
}

func (c UpdateVerifierStatusCommand) VerifierID() int        { return c.verifierID }
func (c UpdateVerifierStatusCommand) Status() VerifierStatus { return c.status }

func (c UpdateVerifierStatusCommand) Payload() map[string]any {
	return map[string]any{"status": string(c.status)}
}
