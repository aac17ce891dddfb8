package transport

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"trackerMobility/internal/modules/reports/application/usecase"
	"trackerMobility/internal/modules/reports/domain"
	"trackerMobility/internal/shared/filtering"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

const (
	opListReports     = "reports.list"
	opGetReport       = "reports.get"
	opUpdateReport    = "reports.update"
	opUpdateInterview = "reports.landlord_interview"
	opDeleteReport    = "reports.delete"
	exportFileName    = "reportes.csv"
)

// ReportHandler exposes the report use-cases under /api/reports.
type ReportHandler struct {
	useCases *usecase.ReportUseCases
	recorder outcome.Recorder
	mapper   *httputil.ErrorMapper
}

func NewReportHandler(useCases *usecase.ReportUseCases, recorder outcome.Recorder) *ReportHandler {
	if recorder == nil {
		recorder = outcome.NopRecorder{}
	}
	return &ReportHandler{useCases: useCases, recorder: recorder, mapper: httputil.DefaultErrorMapper()}
}

func (h *ReportHandler) Register(group *echo.Group) {
	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.PUT("/interviews/:orderId", h.UpdateLandlordInterview)
}

func (h *ReportHandler) List(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, opListReports, result)
	}
	h.recorder.Record(opListReports, result.Code)

	engine := domain.NewReportFilterEngine(result.Data)
	engine.UpdateCriteria(reportPatchFromQuery(c.QueryParams()))
	filtered := engine.Result()
	return c.JSON(http.StatusOK, httputil.ListResponse[domain.ReportSummary, domain.ReportFilters, domain.ReportStats]{
		Success:  true,
		Code:     result.Code,
		Message:  outcome.CountMessage(len(filtered), "reporte", "reportes"),
		Data:     filtered,
		Total:    len(result.Data),
		Criteria: engine.Criteria(),
		Stats:    engine.Stats(),
	})
}

func (h *ReportHandler) Export(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, opListReports, result)
	}
	engine := domain.NewReportFilterEngine(result.Data)
	engine.UpdateCriteria(reportPatchFromQuery(c.QueryParams()))
	content, ok := engine.Export(domain.ReportExportColumns)
	return httputil.WriteCSV(c, exportFileName, content, ok)
}

func (h *ReportHandler) Get(c echo.Context) error {
	result := h.useCases.FetchByID.Execute(c.Request().Context(), c.Param("id"))
	return httputil.WriteOutcome(c, h.recorder, opGetReport, result)
}

func (h *ReportHandler) Update(c echo.Context) error {
	var input domain.UpdateReportInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.useCases.Update.Execute(c.Request().Context(), c.Param("id"), input)
	return httputil.WriteOutcome(c, h.recorder, opUpdateReport, result)
}

func (h *ReportHandler) UpdateLandlordInterview(c echo.Context) error {
	var input domain.LandlordInterviewInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	orderID, ok := identifierParam(c, "orderId")
	if !ok {
		return httputil.WriteOutcome(c, h.recorder, opUpdateInterview,
			outcome.Fail[*domain.LandlordInterview](outcome.CodeInvalidParams, "El identificador de la orden no es válido"))
	}
	input.OrderID = orderID
	result := h.useCases.LandlordInterview.Execute(c.Request().Context(), input)
	return httputil.WriteOutcome(c, h.recorder, opUpdateInterview, result)
}

func (h *ReportHandler) Delete(c echo.Context) error {
	result := h.useCases.Delete.Execute(c.Request().Context(), c.Param("id"))
	return httputil.WriteOutcome(c, h.recorder, opDeleteReport, result)
}

func reportPatchFromQuery(values url.Values) domain.ReportFiltersPatch {
	patch := domain.ReportFiltersPatch{
		SearchText:                httputil.QueryString(values, "search"),
		Statuses:                  httputil.QueryList[domain.ReportStatus](values, "status"),
		FinalResults:              httputil.QueryList[domain.FinalResult](values, "finalResult"),
		DateFrom:                  httputil.QueryString(values, "dateFrom"),
		DateTo:                    httputil.QueryString(values, "dateTo"),
		CompanyID:                 httputil.QueryInt(values, "companyId"),
		VerifierID:                httputil.QueryInt(values, "verifierId"),
		HasObservations:           httputil.QueryBool(values, "hasObservations"),
		HasUnresolvedObservations: httputil.QueryBool(values, "hasUnresolvedObservations"),
		HasDocuments:              httputil.QueryBool(values, "hasDocuments"),
	}
	if raw := httputil.QueryString(values, "completeness"); raw != nil {
		completeness := filtering.ParseCompleteness(*raw)
		patch.Completeness = &completeness
	}
	return patch
}

func identifierParam(c echo.Context, name string) (int, bool) {
	return normalization.ParseIdentifier(c.Param(name))
}
