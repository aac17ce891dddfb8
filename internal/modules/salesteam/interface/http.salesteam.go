package transport

import (
	"github.com/labstack/echo/v4"

	orders "trackerMobility/internal/modules/orders/interface"
	"trackerMobility/internal/modules/salesteam/application/usecase"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/outcome"
)

type SalesTeamHandler struct {
	overview *usecase.FetchSalesOverviewUseCase
	recorder outcome.Recorder
}

func NewSalesTeamHandler(overview *usecase.FetchSalesOverviewUseCase, recorder outcome.Recorder) *SalesTeamHandler {
	if recorder == nil {
		recorder = outcome.NopRecorder{}
	}
	return &SalesTeamHandler{overview: overview, recorder: recorder}
}

func (h *SalesTeamHandler) Register(group *echo.Group) {
	group.GET("/overview", h.Overview)
}

// Overview accepts the same query criteria as the order list.
func (h *SalesTeamHandler) Overview(c echo.Context) error {
	result := h.overview.Execute(c.Request().Context(), orders.OrderPatchFromQuery(c.QueryParams()))
	return httputil.WriteOutcome(c, h.recorder, "sales_team.overview", result)
}
