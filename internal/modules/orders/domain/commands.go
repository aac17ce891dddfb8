package domain

import (
	"trackerMobility/internal/shared/validation"
)

type AssignVerifierInput struct {
	OrderID       int    `json:"orderId"`
	VerifierID    int    `json:"verifierId"`
	ScheduledDate string `json:"scheduledDate"`
}

type AssignVerifierCommand struct {
	orderID       int
	verifierID    int
	scheduledDate string
}

func NewAssignVerifierCommand(input AssignVerifierInput) (AssignVerifierCommand, error) {
	orderID, err := validation.RequireID("orderId", input.OrderID)
	if err != nil {
		return AssignVerifierCommand{}, err
	}
	verifierID, err := validation.RequireID("verifierId", input.VerifierID)
	if err != nil {
		return AssignVerifierCommand{}, err
	}
	return AssignVerifierCommand{
		orderID:       orderID,
		verifierID:    verifierID,
		scheduledDate: validation.Optional(input.ScheduledDate),
	}, nil
}

func (c AssignVerifierCommand) OrderID() int    { return c.orderID }
func (c AssignVerifierCommand) VerifierID() int { return c.verifierID }

func (c AssignVerifierCommand) Payload() map[string]any {
	payload := map[string]any{"verifierId": c.verifierID}
	if c.scheduledDate != "" {
		payload["scheduledDate"] = c.scheduledDate
	}
	return payload
}

type UpdateOrderStatusInput struct {
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
}

type UpdateOrderStatusCommand struct {
	orderID int
	status  OrderStatus
	reason  string
}

func NewUpdateOrderStatusCommand(input UpdateOrderStatusInput) (UpdateOrderStatusCommand, error) {
	orderID, err := validation.RequireID("orderId", input.OrderID)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	status, err := validation.RequireOneOf("status", input.Status, OrderStatuses...)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{orderID: orderID, status: status, reason: validation.Optional(input.Reason)}, nil
}

func (c UpdateOrderStatusCommand) OrderID() int        { return c.orderID }
func (c UpdateOrderStatusCommand) Status() OrderStatus { return c.status }

func (c UpdateOrderStatusCommand) Payload() map[string]any {
	return map[string]any{"status": string(c.status), "reason": c.reason}
}

type CreateOrderRequestInput struct {
	CompanyID      int    `json:"companyId"`
	ClientName     string `json:"clientName"`
	ClientDocument string `json:"clientDocument"`
	Address        string `json:"address"`
	District       string `json:"district"`
	Phone          string `json:"phone"`
	Notes          string `json:"notes"`
}

type CreateOrderRequestCommand struct {
	companyID      int
	clientName     string
	clientDocument string
	address        string
	district       string
	phone          string
	notes          string
}

func NewCreateOrderRequestCommand(input CreateOrderRequestInput) (CreateOrderRequestCommand, error) {
	companyID, err := validation.RequireID("companyId", input.CompanyID)
	if err != nil {
		return CreateOrderRequestCommand{}, err
	}
	clientName, err := validation.RequireText("clientName", input.ClientName)
	if err != nil {
		return CreateOrderRequestCommand{}, err
	}
	clientDocument, err := validation.RequireText("clientDocument", input.ClientDocument)
	if err != nil {
		return CreateOrderRequestCommand{}, err
	}
	address, err := validation.RequireText("address", input.Address)
	if err != nil {
		return CreateOrderRequestCommand{}, err
	}
	return CreateOrderRequestCommand{
		companyID:      companyID,
		clientName:     clientName,
		clientDocument: clientDocument,
		address:        address,
		district:       validation.Optional(input.District),
		phone:          validation.Optional(input.Phone),
		notes:          validation.Optional(input.Notes),
	}, nil
}

func (c CreateOrderRequestCommand) CompanyID() int     { return c.companyID }
func (c CreateOrderRequestCommand) ClientName() string { return c.clientName }

func (c CreateOrderRequestCommand) Payload() map[string]any {
	return map[string]any{
		"companyId":      c.companyID,
		"clientName":     c.clientName,
		"clientDocument": c.clientDocument,
		"address":        c.address,
		"district":       c.district,
		"phone":          c.phone,
		"notes":          c.notes,
	}
}

// ReviewDecision is the outcome of reviewing an order request.
type ReviewDecision string

const (
	ReviewApproved ReviewDecision = "APPROVED"
	ReviewRejected ReviewDecision = "REJECTED"
)

type ReviewOrderRequestInput struct {
	RequestID int    `json:"requestId"`
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
}

type ReviewOrderRequestCommand struct {
	requestID int
	decision  ReviewDecision
	reason    string
}

// NewReviewOrderRequestCommand requires a reason only for rejections.
func NewReviewOrderRequestCommand(input ReviewOrderRequestInput) (ReviewOrderRequestCommand, error) {
	requestID, err := validation.RequireID("requestId", input.RequestID)
	if err != nil {
		return ReviewOrderRequestCommand{}, err
	}
	decision, err := validation.RequireOneOf("decision", input.Decision, ReviewApproved, ReviewRejected)
	if err != nil {
		return ReviewOrderRequestCommand{}, err
	}
	reason := validation.Optional(input.Reason)
	if decision == ReviewRejected && reason == "" {
		return ReviewOrderRequestCommand{}, validation.Required("reason")
	}
	return ReviewOrderRequestCommand{requestID: requestID, decision: decision, reason: reason}, nil
}

func (c ReviewOrderRequestCommand) RequestID() int           { return c.requestID }
func (c ReviewOrderRequestCommand) Decision() ReviewDecision { return c.decision }
func (c ReviewOrderRequestCommand) Reason() string           { return c.reason }

func (c ReviewOrderRequestCommand) Payload() map[string]any {
	return map[string]any{"decision": string(c.decision), "reason": c.reason}
}
