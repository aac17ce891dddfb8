package transport

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"trackerMobility/internal/modules/orders/application/usecase"
	"trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/outcome"
)

// OrderHandler exposes verification orders under /api/orders and order
// requests under /api/order-requests.
type OrderHandler struct {
	orders   *usecase.OrderUseCases
	requests *usecase.OrderRequestUseCases
	recorder outcome.Recorder
	mapper   *httputil.ErrorMapper
}

func NewOrderHandler(orders *usecase.OrderUseCases, requests *usecase.OrderRequestUseCases, recorder outcome.Recorder) *OrderHandler {
	if recorder == nil {
		recorder = outcome.NopRecorder{}
	}
	return &OrderHandler{orders: orders, requests: requests, recorder: recorder, mapper: httputil.DefaultErrorMapper()}
}

func (h *OrderHandler) RegisterOrders(group *echo.Group) {
	group.GET("", h.ListOrders)
	group.GET("/export", h.ExportOrders)
	group.GET("/:id", h.GetOrder)
	group.PATCH("/:id/assign", h.AssignVerifier)
	group.PATCH("/:id/status", h.UpdateStatus)
	group.DELETE("/:id", h.DeleteOrder)
}

func (h *OrderHandler) RegisterRequests(group *echo.Group) {
	group.GET("", h.ListRequests)
	group.GET("/export", h.ExportRequests)
	group.GET("/:id", h.GetRequest)
	group.POST("", h.CreateRequest)
	group.PATCH("/:id/review", h.ReviewRequest)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	result := h.orders.FetchAll.Execute(c.Request().Context())
	h.recorder.Record("orders.list", result.Code)
	if !result.Success {
		return c.JSON(httputil.StatusForCode(result.Code), result)
	}
	engine := domain.NewOrderFilterEngine(result.Data)
	engine.UpdateCriteria(OrderPatchFromQuery(c.QueryParams()))
	filtered := engine.Result()
	return c.JSON(http.StatusOK, httputil.ListResponse[domain.OrderSummary, domain.OrderFilters, domain.OrderStats]{
		Success:  true,
		Code:     result.Code,
		Message:  outcome.CountMessage(len(filtered), "orden", "órdenes"),
		Data:     filtered,
		Total:    len(result.Data),
		Criteria: engine.Criteria(),
		Stats:    engine.Stats(),
	})
}

func (h *OrderHandler) ExportOrders(c echo.Context) error {
	result := h.orders.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, "orders.export", result)
	}
	engine := domain.NewOrderFilterEngine(result.Data)
	engine.UpdateCriteria(OrderPatchFromQuery(c.QueryParams()))
	content, ok := engine.Export(domain.OrderExportColumns)
	return httputil.WriteCSV(c, "ordenes.csv", content, ok)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "orders.get", h.orders.FetchByID.Execute(c.Request().Context(), c.Param("id")))
}

func (h *OrderHandler) AssignVerifier(c echo.Context) error {
	var input domain.AssignVerifierInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.orders.AssignVerifier.Execute(c.Request().Context(), c.Param("id"), input)
	return httputil.WriteOutcome(c, h.recorder, "orders.assign", result)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input domain.UpdateOrderStatusInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.orders.UpdateStatus.Execute(c.Request().Context(), c.Param("id"), input)
	return httputil.WriteOutcome(c, h.recorder, "orders.status", result)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "orders.delete", h.orders.Delete.Execute(c.Request().Context(), c.Param("id")))
}

func (h *OrderHandler) ListRequests(c echo.Context) error {
	result := h.requests.FetchAll.Execute(c.Request().Context())
	h.recorder.Record("order_requests.list", result.Code)
	if !result.Success {
		return c.JSON(httputil.StatusForCode(result.Code), result)
	}
	engine := domain.NewOrderRequestFilterEngine(result.Data)
	engine.UpdateCriteria(requestPatchFromQuery(c.QueryParams()))
	filtered := engine.Result()
	return c.JSON(http.StatusOK, httputil.ListResponse[domain.OrderRequest, domain.OrderRequestFilters, domain.OrderRequestStats]{
		Success:  true,
		Code:     result.Code,
		Message:  outcome.CountMessage(len(filtered), "solicitud", "solicitudes"),
		Data:     filtered,
		Total:    len(result.Data),
		Criteria: engine.Criteria(),
		Stats:    engine.Stats(),
	})
}

func (h *OrderHandler) ExportRequests(c echo.Context) error {
	result := h.requests.FetchAll.Execute(c.Request().Context())
	if !result.Success {
		return httputil.WriteOutcome(c, h.recorder, "order_requests.export", result)
	}
	engine := domain.NewOrderRequestFilterEngine(result.Data)
	engine.UpdateCriteria(requestPatchFromQuery(c.QueryParams()))
	content, ok := engine.Export(domain.OrderRequestExportColumns)
	return httputil.WriteCSV(c, "solicitudes.csv", content, ok)
}

func (h *OrderHandler) GetRequest(c echo.Context) error {
	return httputil.WriteOutcome(c, h.recorder, "order_requests.get", h.requests.FetchByID.Execute(c.Request().Context(), c.Param("id")))
}

func (h *OrderHandler) CreateRequest(c echo.Context) error {
	var input domain.CreateOrderRequestInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.requests.Create.Execute(c.Request().Context(), input)
	if result.Success {
		h.recorder.Record("order_requests.create", result.Code)
		return c.JSON(http.StatusCreated, result)
	}
	return httputil.WriteOutcome(c, h.recorder, "order_requests.create", result)
}

func (h *OrderHandler) ReviewRequest(c echo.Context) error {
	var input domain.ReviewOrderRequestInput
	if err := httputil.Bind(c, &input); err != nil {
		return httputil.WriteError(c, h.mapper, err)
	}
	result := h.requests.Review.Execute(c.Request().Context(), c.Param("id"), input)
	return httputil.WriteOutcome(c, h.recorder, "order_requests.review", result)
}

// OrderPatchFromQuery reads the order list criteria from query parameters.
func OrderPatchFromQuery(values url.Values) domain.OrderFiltersPatch {
	return domain.OrderFiltersPatch{
		SearchText: httputil.QueryString(values, "search"),
		Statuses:   httputil.QueryList[domain.OrderStatus](values, "status"),
		DateFrom:   httputil.QueryString(values, "dateFrom"),
		DateTo:     httputil.QueryString(values, "dateTo"),
		CompanyID:  httputil.QueryInt(values, "companyId"),
		VerifierID: httputil.QueryInt(values, "verifierId"),
	}
}

func requestPatchFromQuery(values url.Values) domain.OrderRequestFiltersPatch {
	return domain.OrderRequestFiltersPatch{
		SearchText: httputil.QueryString(values, "search"),
		Statuses:   httputil.QueryList[domain.RequestStatus](values, "status"),
		DateFrom:   httputil.QueryString(values, "dateFrom"),
		DateTo:     httputil.QueryString(values, "dateTo"),
		CompanyID:  httputil.QueryInt(values, "companyId"),
	}
}
