package infrastructure

import (
	"context"
	"fmt"

	"trackerMobility/internal/modules/customers/application/port"
	"trackerMobility/internal/modules/customers/domain"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/transport"
)

const companiesPath = "/api/v1/companies"

func companyPath(id int) string { return fmt.Sprintf("%s/%d", companiesPath, id) }

type CompanyHTTPRepository struct {
	rest transport.Requester
}

var _ port.CompanyRepository = (*CompanyHTTPRepository)(nil)

func NewCompanyHTTPRepository(rest transport.Requester) *CompanyHTTPRepository {
	return &CompanyHTTPRepository{rest: rest}
}

func (r *CompanyHTTPRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	payload, err := r.rest.Get(ctx, companiesPath, nil)
	if err != nil {
		return nil, err
	}
	return domain.BuildCompanyList(normalization.ItemsFromPayload(payload, "companies")), nil
}

func (r *CompanyHTTPRepository) FindByID(ctx context.Context, id int) (*domain.Company, error) {
	payload, err := r.rest.Get(ctx, companyPath(id), nil)
	if err != nil {
		return nil, err
	}
	company, ok := domain.NormalizeCompany(normalization.MapFromPayload(payload))
	if !ok {
		return nil, nil
	}
	return &company, nil
}

func (r *CompanyHTTPRepository) Create(ctx context.Context, cmd domain.SaveCompanyCommand) (*domain.Company, error) {
	payload, err := r.rest.Post(ctx, companiesPath, cmd.Payload())
	if err != nil {
		return nil, err
	}
	company, ok := domain.NormalizeCompany(normalization.MapFromPayload(payload))
	if !ok {
		return nil, fmt.Errorf("create company: upstream returned no record")
	}
	return &company, nil
}

func (r *CompanyHTTPRepository) Update(ctx context.Context, cmd domain.SaveCompanyCommand) (*domain.Company, error) {
	payload, err := r.rest.Put(ctx, companyPath(cmd.CompanyID()), cmd.Payload())
	if err != nil {
		return nil, err
	}
	company, ok := domain.NormalizeCompany(normalization.MapFromPayload(payload))
	if !ok {
		company = cmd.Company()
	}
	return &company, nil
}

func (r *CompanyHTTPRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.rest.Delete(ctx, companyPath(id)); err != nil {
		return fmt.Errorf("delete company %d: %w", id, err)
	}
	return nil
}
