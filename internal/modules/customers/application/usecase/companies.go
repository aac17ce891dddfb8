package usecase

import (
	"context"
	"errors"
	"log/slog"

	"trackerMobility/internal/modules/customers/application/port"
	"trackerMobility/internal/modules/customers/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

const messageInvalidCompanyID = "El identificador de la empresa no es válido"

type FetchAllCompaniesUseCase struct {
	repo    port.CompanyRepository
	handler errorhandler.Classifier
}

func NewFetchAllCompaniesUseCase(repo port.CompanyRepository, handler errorhandler.Classifier) (*FetchAllCompaniesUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchAllCompaniesUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchAllCompaniesUseCase) Execute(ctx context.Context) outcome.Outcome[[]domain.Company] {
	companies, err := uc.repo.FindAll(ctx)
	if err != nil {
		return errorhandler.Resolve[[]domain.Company](uc.handler, err, "obtener las empresas", "Error al obtener las empresas")
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return outcome.Succeed(companies, outcome.CountMessage(len(companies), "empresa", "empresas"))
}

type FetchCompanyByIDUseCase struct {
	repo    port.CompanyRepository
	handler errorhandler.Classifier
}

func NewFetchCompanyByIDUseCase(repo port.CompanyRepository, handler errorhandler.Classifier) (*FetchCompanyByIDUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchCompanyByIDUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchCompanyByIDUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[*domain.Company] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Company](outcome.CodeInvalidParams, messageInvalidCompanyID)
	}
	company, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return errorhandler.Resolve[*domain.Company](uc.handler, err, "obtener la empresa", "Error al obtener la empresa")
	}
	if company == nil {
		return outcome.Fail[*domain.Company](outcome.CodeNotFound, "Empresa no encontrada")
	}
	return outcome.Succeed(company, "Empresa obtenida correctamente")
}

type CreateCompanyUseCase struct {
	repo    port.CompanyRepository
	handler errorhandler.Classifier
}

func NewCreateCompanyUseCase(repo port.CompanyRepository, handler errorhandler.Classifier) (*CreateCompanyUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &CreateCompanyUseCase{repo: repo, handler: handler}, nil
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input domain.SaveCompanyInput) outcome.Outcome[*domain.Company] {
	input.CompanyID = 0
	cmd, err := domain.NewSaveCompanyCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Company](uc.handler, err, "registrar la empresa", "Error al registrar la empresa")
	}
	company, err := uc.repo.Create(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Company](uc.handler, err, "registrar la empresa", "Error al registrar la empresa")
	}
	slog.Info("company created", slog.String("ruc", cmd.RUC()))
	return outcome.Succeed(company, "Empresa registrada correctamente")
}

type UpdateCompanyUseCase struct {
	repo    port.CompanyRepository
	handler errorhandler.Classifier
}

func NewUpdateCompanyUseCase(repo port.CompanyRepository, handler errorhandler.Classifier) (*UpdateCompanyUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &UpdateCompanyUseCase{repo: repo, handler: handler}, nil
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, rawID any, input domain.SaveCompanyInput) outcome.Outcome[*domain.Company] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Company](outcome.CodeInvalidParams, messageInvalidCompanyID)
	}
	input.CompanyID = id
	cmd, err := domain.NewSaveCompanyCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Company](uc.handler, err, "actualizar la empresa", "Error al actualizar la empresa")
	}
	company, err := uc.repo.Update(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Company](uc.handler, err, "actualizar la empresa", "Error al actualizar la empresa")
	}
	return outcome.Succeed(company, "Empresa actualizada correctamente")
}

type DeleteCompanyUseCase struct {
	repo    port.CompanyRepository
	handler errorhandler.Classifier
}

func NewDeleteCompanyUseCase(repo port.CompanyRepository, handler errorhandler.Classifier) (*DeleteCompanyUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &DeleteCompanyUseCase{repo: repo, handler: handler}, nil
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[struct{}] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[struct{}](outcome.CodeInvalidParams, messageInvalidCompanyID)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return errorhandler.Resolve[struct{}](uc.handler, err, "eliminar la empresa", "Error al eliminar la empresa")
	}
	return outcome.Deleted[struct{}]("Empresa eliminada correctamente")
}

type CompanyUseCases struct {
	FetchAll  *FetchAllCompaniesUseCase
	FetchByID *FetchCompanyByIDUseCase
	Create    *CreateCompanyUseCase
	Update    *UpdateCompanyUseCase
	Delete    *DeleteCompanyUseCase
}

func NewCompanyUseCases(repo port.CompanyRepository, handler errorhandler.Classifier) (*CompanyUseCases, error) {
	fetchAll, err1 := NewFetchAllCompaniesUseCase(repo, handler)
	fetchByID, err2 := NewFetchCompanyByIDUseCase(repo, handler)
	create, err3 := NewCreateCompanyUseCase(repo, handler)
	update, err4 := NewUpdateCompanyUseCase(repo, handler)
	remove, err5 := NewDeleteCompanyUseCase(repo, handler)
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}
	return &CompanyUseCases{FetchAll: fetchAll, FetchByID: fetchByID, Create: create, Update: update, Delete: remove}, nil
}
