package port

import (
	"context"
	"errors"

	"trackerMobility/internal/modules/customers/domain"
)

var ErrRepositoryRequired = errors.New("company repository is required")

type CompanyRepository interface {
	FindAll(ctx context.Context) ([]domain.Company, error)
	FindByID(ctx context.Context, id int) (*domain.Company, error)
	Create(ctx context.Context, cmd domain.SaveCompanyCommand) (*domain.Company, error)
	Update(ctx context.Context, cmd domain.SaveCompanyCommand) (*domain.Company, error)
	Delete(ctx context.Context, id int) error
}
