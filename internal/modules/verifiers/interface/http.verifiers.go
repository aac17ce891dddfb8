package transport

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"trackerMobility/internal/modules/verifiers/application/usecase"
	"trackerMobility/internal/modules/verifiers/domain"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/outcome"
)

type VerifierHandler struct {
	useCases *usecase.VerifierUseCases
	recorder outcome.Recorder
	mapper   *httputil.ErrorMapper
}

func NewVerifierHandler(useCases *usecase.VerifierUseCases, recorder outcome.Recorder) *VerifierHandler {
	if recorder == nil {
		recorder = outcome.NopRecorder{}
	}
	return &VerifierHandler{useCases: useCases, recorder: recorder, mapper: httputil.DefaultErrorMapper()}
}

func (h *VerifierHandler) Register(group *echo.Group) {
	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PATCH("/:id/status", h.UpdateStatus)
	group.DELETE("/:id", h.Delete)
}

func (h *VerifierHandler) List(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	h.recorder.Record("verifiers.list", result.Code)
	if !result.Success {
		return c.JSON(httputil.StatusForCode(result.Code), result)
	}
	engine := domain.NewVerifierFilterEngine(result.Data)
	engine.UpdateCriteria(verifierPatchFromQuery(c.QueryParams()))
	filtered := engine.Result()
	return c.JSON(http.StatusOK, httputil.ListResponse[domain.Verifier, domain.VerifierFilters, domain.VerifierStats]{
		Success:  true,
		Code:     result.Code,
		Message:  outcome.CountMessage(len(filtered), "verificador", "verificadores"),
		Data:     filtered,
		Total:    len(result.Data),
		Criteria: engine.Criteria(),
		Stats:    engine.Stats(),
	})
}

func (h *VerifierHandler) Export(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, "verifiers.export", result)
	}
	engine := domain.NewVerifierFilterEngine(result.Data)
	engine.UpdateCriteria(verifierPatchFromQuery(c.QueryParams()))
	content, ok := engine.Export(domain.VerifierExportColumns)
	return httputil.WriteCSV(c, "verificadores.csv", content, ok)
}

func (h *VerifierHandler) Get(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "verifiers.get", h.useCases.FetchByID.Execute(c.Request().Context(), c.Param("id")))
}

func (h *VerifierHandler) Create(c echo.Context) error {
	var input domain.CreateVerifierInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.useCases.Create.Execute(c.Request().Context(), input)
	if result.Success {
		h.recorder.Record("verifiers.create", result.Code)
		return c.JSON(http.StatusCreated, result)
	}
	return httputil.WriteOutcome(c, h.recorder, "verifiers.create", result)
}

func (h *VerifierHandler) UpdateStatus(c echo.Context) error {
	var input domain.UpdateVerifierStatusInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.useCases.UpdateStatus.Execute(c.Request().Context(), c.Param("id"), input)
	return httputil.WriteOutcome(c, h.recorder, "verifiers.status", result)
}

func (h *VerifierHandler) Delete(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "verifiers.delete", h.useCases.Delete.Execute(c.Request().Context(), c.Param("id")))
}

func verifierPatchFromQuery(values url.Values) domain.VerifierFiltersPatch {
	return domain.VerifierFiltersPatch{
		SearchText:        httputil.QueryString(values, "search"),
		Statuses:          httputil.QueryList[domain.VerifierStatus](values, "status"),
		District:          httputil.QueryString(values, "district"),
		DateFrom:          httputil.QueryString(values, "dateFrom"),
		DateTo:            httputil.QueryString(values, "dateTo"),
		HasAssignedOrders: httputil.QueryBool(values, "hasAssignedOrders"),
	}
}
