package domain

import (
	"slices"

	"trackerMobility/internal/shared/validation"
)

// UpdateReportInput is the raw payload accepted by the update use-case.
type UpdateReportInput struct {
	ReportID     int                    `json:"reportId"`
	FinalResult  string                 `json:"finalResult"`
	Summary      string                 `json:"summary"`
	Observations validation.ListEntries `json:"observations"`
	Glossary     validation.ListEntries `json:"glossary"`
	Casuistics   validation.ListEntries `json:"casuistics"`
}

// UpdateReportCommand is a validated report update. The zero value is never
// handed to a repository; build it with NewUpdateReportCommand.
type UpdateReportCommand struct {
	reportID     int
	finalResult  FinalResult
	summary      string
	observations []string
	glossary     []string
	casuistics   []string
}

func NewUpdateReportCommand(input UpdateReportInput) (UpdateReportCommand, error) {
	reportID, err := validation.RequireID("reportId", input.ReportID)
	if err != nil {
		return UpdateReportCommand{}, err
	}
	finalResult, err := validation.RequireOneOf("finalResult", input.FinalResult, FinalResults...)
	if err != nil {
		return UpdateReportCommand{}, err
	}
	return UpdateReportCommand{
		reportID:     reportID,
		finalResult:  finalResult,
		summary:      validation.Optional(input.Summary),
		observations: input.Observations.Normalize(),
		glossary:     input.Glossary.Normalize(),
		casuistics:   input.Casuistics.Normalize(),
	}, nil
}

func (c UpdateReportCommand) ReportID() int            { return c.reportID }
func (c UpdateReportCommand) FinalResult() FinalResult { return c.finalResult }
func (c UpdateReportCommand) Summary() string          { return c.summary }
func (c UpdateReportCommand) Observations() []string   { return slices.Clone(c.observations) }
func (c UpdateReportCommand) Glossary() []string       { return slices.Clone(c.glossary) }
func (c UpdateReportCommand) Casuistics() []string     { return slices.Clone(c.casuistics) }

// Payload is the request body sent upstream.
func (c UpdateReportCommand) Payload() map[string]any {
	return map[string]any{
		"finalResult":  string(c.finalResult),
		"summary":      c.summary,
		"observations": c.observations,
		"glossary":     c.glossary,
		"casuistics":   c.casuistics,
	}
}

// LandlordInterviewInput is the raw interview payload. IsValid stays untyped
// so only a JSON true marks the interview as valid.
type LandlordInterviewInput struct {
	OrderID       int    `json:"orderId"`
	TenantName    string `json:"tenantName"`
	LandlordName  string `json:"landlordName"`
	LandlordPhone string `json:"landlordPhone"`
	Relationship  string `json:"relationship"`
	Comments      string `json:"comments"`
	IsValid       any    `json:"isValid"`
}

type UpdateLandlordInterviewCommand struct {
	orderID       int
	tenantName    string
	landlordName  string
	landlordPhone string
	relationship  string
	comments      string
	isValid       bool
}

func NewUpdateLandlordInterviewCommand(input LandlordInterviewInput) (UpdateLandlordInterviewCommand, error) {
	orderID, err := validation.RequireID("orderId", input.OrderID)
	if err != nil {
		return UpdateLandlordInterviewCommand{}, err
	}
	tenantName, err := validation.RequireText("tenantName", input.TenantName)
	if err != nil {
		return UpdateLandlordInterviewCommand{}, err
	}
	return UpdateLandlordInterviewCommand{
		orderID:       orderID,
		tenantName:    tenantName,
		landlordName:  validation.Optional(input.LandlordName),
		landlordPhone: validation.Optional(input.LandlordPhone),
		relationship:  validation.Optional(input.Relationship),
		comments:      validation.Optional(input.Comments),
		isValid:       validation.StrictTrue(input.IsValid),
	}, nil
}

func (c UpdateLandlordInterviewCommand) OrderID() int          { return c.orderID }
func (c UpdateLandlordInterviewCommand) TenantName() string    { return c.tenantName }
func (c UpdateLandlordInterviewCommand) LandlordName() string  { return c.landlordName }
func (c UpdateLandlordInterviewCommand) LandlordPhone() string { return c.landlordPhone }
func (c UpdateLandlordInterviewCommand) Relationship() string  { return c.relationship }
func (c UpdateLandlordInterviewCommand) Comments() string      { return c.comments }
func (c UpdateLandlordInterviewCommand) IsValid() bool         { return c.isValid }

func (c UpdateLandlordInterviewCommand) Payload() map[string]any {
	return map[string]any{
		"tenantName":    c.tenantName,
		"landlordName":  c.landlordName,
		"landlordPhone": c.landlordPhone,
		"relationship":  c.relationship,
		"comments":      c.comments,
		"isValid":       c.isValid,
	}
}
