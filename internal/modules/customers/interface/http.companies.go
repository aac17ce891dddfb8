package transport

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"trackerMobility/internal/modules/customers/application/usecase"
	"trackerMobility/internal/modules/customers/domain"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/outcome"
)

type CompanyHandler struct {
	useCases *usecase.CompanyUseCases
	recorder outcome.Recorder
	mapper   *httputil.ErrorMapper
}

func NewCompanyHandler(useCases *usecase.CompanyUseCases, recorder outcome.Recorder) *CompanyHandler {
	if recorder == nil {
		recorder = outcome.NopRecorder{}
	}
	return &CompanyHandler{useCases: useCases, recorder: recorder, mapper: httputil.DefaultErrorMapper()}
}

func (h *CompanyHandler) Register(group *echo.Group) {
	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *CompanyHandler) List(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	h.recorder.Record("companies.list", result.Code)
	if !result.Success {
		return c.JSON(httputil.StatusForCode(result.Code), result)
	}
	engine := domain.NewCompanyFilterEngine(result.Data)
	engine.UpdateCriteria(companyPatchFromQuery(c.QueryParams()))
	filtered := engine.Result()
	return c.JSON(http.StatusOK, httputil.ListResponse[domain.Company, domain.CompanyFilters, domain.CompanyStats]{
		Success:  true,
		Code:     result.Code,
		Message:  outcome.CountMessage(len(filtered), "empresa", "empresas"),
		Data:     filtered,
		Total:    len(result.Data),
		Criteria: engine.Criteria(),
		Stats:    engine.Stats(),
	})
}

func (h *CompanyHandler) Export(c echo.Context) error {
	result := h.useCases.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, "companies.export", result)
	}
	engine := domain.NewCompanyFilterEngine(result.Data)
	engine.UpdateCriteria(companyPatchFromQuery(c.QueryParams()))
	content, ok := engine.Export(domain.CompanyExportColumns)
	return httputil.WriteCSV(c, "empresas.csv", content, ok)
}

func (h *CompanyHandler) Get(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "companies.get", h.useCases.FetchByID.Execute(c.Request().Context(), c.Param("id")))
}

func (h *CompanyHandler) Create(c echo.Context) error {
	var input domain.SaveCompanyInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.useCases.Create.Execute(c.Request().Context(), input)
	if result.Success {
		h.recorder.Record("companies.create", result.Code)
		return c.JSON(http.StatusCreated, result)
	}
	return httputil.WriteOutcome(c, h.recorder, "companies.create", result)
}

func (h *CompanyHandler) Update(c echo.Context) error {
	var input domain.SaveCompanyInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	return httputil.WriteOutcome(c, h.recorder, "companies.update", h.useCases.Update.Execute(c.Request().Context(), c.Param("id"), input))
}

func (h *CompanyHandler) Delete(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "companies.delete", h.useCases.Delete.Execute(c.Request().Context(), c.Param("id")))
}

func companyPatchFromQuery(values url.Values) domain.CompanyFiltersPatch {
	return domain.CompanyFiltersPatch{
		SearchText: httputil.QueryString(values, "search"),
		ActiveOnly: httputil.QueryBool(values, "active"),
		DateFrom:   httputil.QueryString(values, "dateFrom"),
		DateTo:     httputil.QueryString(values, "dateTo"),
	}
}
