package usecase

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	customersport "trackerMobility/internal/modules/customers/application/port"
	customers "trackerMobility/internal/modules/customers/domain"
	ordersport "trackerMobility/internal/modules/orders/application/port"
	orders "trackerMobility/internal/modules/orders/domain"
	"trackerMobility/internal/modules/salesteam/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/outcome"
)

var ErrOrdersRequired = errors.New("sales overview requires an order repository")

// FetchSalesOverviewUseCase groups verification orders per client company.
// The company directory is optional and only contributes names and
// companies without orders; failing to read it does not fail the overview.
type FetchSalesOverviewUseCase struct {
	orders    ordersport.OrderRepository
	companies customersport.CompanyRepository
	handler   errorhandler.Classifier
	logger    *slog.Logger
}

func NewFetchSalesOverviewUseCase(orderRepo ordersport.OrderRepository, companyRepo customersport.CompanyRepository, handler errorhandler.Classifier, logger *slog.Logger) (*FetchSalesOverviewUseCase, error) {
	if orderRepo == nil {
		return nil, ErrOrdersRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchSalesOverviewUseCase{orders: orderRepo, companies: companyRepo, handler: handler, logger: logger}, nil
}

func (uc *FetchSalesOverviewUseCase) Execute(ctx context.Context, patch orders.OrderFiltersPatch) outcome.Outcome[domain.SalesOverview] {
	var (
		orderList []orders.OrderSummary
		directory []customers.Company
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orderList, err = uc.orders.FindAll(groupCtx)
		return err
	})
	if uc.companies != nil {
		group.Go(func() error {
			companies, err := uc.companies.FindAll(groupCtx)
			if err != nil {
				uc.logger.Warn("company directory unavailable for sales overview", slog.Any("error", err))
				return nil
			}
			directory = companies
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return errorhandler.Resolve[domain.SalesOverview](uc.handler, err, "obtener el resumen comercial", "Error al obtener el resumen comercial")
	}

	overview := domain.BuildSalesOverview(orderList, directory, patch)
	return outcome.Succeed(overview, outcome.CountMessage(len(overview.Companies), "empresa", "empresas"))
}
