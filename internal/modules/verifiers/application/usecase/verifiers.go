package usecase

import (
	"context"
	"errors"
	"log/slog"

	"trackerMobility/internal/modules/verifiers/application/port"
	"trackerMobility/internal/modules/verifiers/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/outcome"
)

const messageInvalidVerifierID = "El identificador del verificador no es válido"

type FetchAllVerifiersUseCase struct {
	repo    port.VerifierRepository
	handler errorhandler.Classifier
}

func NewFetchAllVerifiersUseCase(repo port.VerifierRepository, handler errorhandler.Classifier) (*FetchAllVerifiersUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchAllVerifiersUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchAllVerifiersUseCase) Execute(ctx context.Context) outcome.Outcome[[]domain.Verifier] {
	verifiers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return errorhandler.Resolve[[]domain.Verifier](uc.handler, err, "obtener los verificadores", "Error al obtener los verificadores")
	}
	if verifiers == nil {
		verifiers = []domain.Verifier{}
	}
	return outcome.Succeed(verifiers, outcome.CountMessage(len(verifiers), "verificador", "verificadores"))
}

type FetchVerifierByIDUseCase struct {
	repo    port.VerifierRepository
	handler errorhandler.Classifier
}

func NewFetchVerifierByIDUseCase(repo port.VerifierRepository, handler errorhandler.Classifier) (*FetchVerifierByIDUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &FetchVerifierByIDUseCase{repo: repo, handler: handler}, nil
}

func (uc *FetchVerifierByIDUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[*domain.Verifier] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Verifier](outcome.CodeInvalidParams, messageInvalidVerifierID)
	}
	verifier, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return errorhandler.Resolve[*domain.Verifier](uc.handler, err, "obtener el verificador", "Error al obtener el verificador")
	}
	if verifier == nil {
		return outcome.Fail[*domain.Verifier](outcome.CodeNotFound, "Verificador no encontrado")
	}
	return outcome.Succeed(verifier, "Verificador obtenido correctamente")
}

type CreateVerifierUseCase struct {
	repo    port.VerifierRepository
	handler errorhandler.Classifier
}

func NewCreateVerifierUseCase(repo port.VerifierRepository, handler errorhandler.Classifier) (*CreateVerifierUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &CreateVerifierUseCase{repo: repo, handler: handler}, nil
}

func (uc *CreateVerifierUseCase) Execute(ctx context.Context, input domain.CreateVerifierInput) outcome.Outcome[*domain.Verifier] {
	cmd, err := domain.NewCreateVerifierCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Verifier](uc.handler, err, "registrar el verificador", "Error al registrar el verificador")
	}
	verifier, err := uc.repo.Create(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Verifier](uc.handler, err, "registrar el verificador", "Error al registrar el verificador")
	}
	slog.Info("verifier created", slog.String("email", cmd.Email()))
	return outcome.Succeed(verifier, "Verificador registrado correctamente")
}

type UpdateVerifierStatusUseCase struct {
	repo    port.VerifierRepository
	handler errorhandler.Classifier
}

func NewUpdateVerifierStatusUseCase(repo port.VerifierRepository, handler errorhandler.Classifier) (*UpdateVerifierStatusUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &UpdateVerifierStatusUseCase{repo: repo, handler: handler}, nil
}

func (uc *UpdateVerifierStatusUseCase) Execute(ctx context.Context, rawID any, input domain.UpdateVerifierStatusInput) outcome.Outcome[*domain.Verifier] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[*domain.Verifier](outcome.CodeInvalidParams, messageInvalidVerifierID)
	}
	input.VerifierID = id
	cmd, err := domain.NewUpdateVerifierStatusCommand(input)
	if err != nil {
		return errorhandler.Resolve[*domain.Verifier](uc.handler, err, "actualizar el estado del verificador", "Error al actualizar el estado")
	}
	verifier, err := uc.repo.UpdateStatus(ctx, cmd)
	if err != nil {
		return errorhandler.Resolve[*domain.Verifier](uc.handler, err, "actualizar el estado del verificador", "Error al actualizar el estado")
	}
	return outcome.Succeed(verifier, "Estado del verificador actualizado correctamente")
}

type DeleteVerifierUseCase struct {
	repo    port.VerifierRepository
	handler errorhandler.Classifier
}

func NewDeleteVerifierUseCase(repo port.VerifierRepository, handler errorhandler.Classifier) (*DeleteVerifierUseCase, error) {
	if repo == nil {
		return nil, port.ErrRepositoryRequired
	}
	return &DeleteVerifierUseCase{repo: repo, handler: handler}, nil
}

func (uc *DeleteVerifierUseCase) Execute(ctx context.Context, rawID any) outcome.Outcome[struct{}] {
	id, ok := normalization.ParseIdentifier(rawID)
	if !ok {
		return outcome.Fail[struct{}](outcome.CodeInvalidParams, messageInvalidVerifierID)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return errorhandler.Resolve[struct{}](uc.handler, err, "eliminar el verificador", "Error al eliminar el verificador")
	}
	return outcome.Deleted[struct{}]("Verificador eliminado correctamente")
}

type VerifierUseCases struct {
	FetchAll     *FetchAllVerifiersUseCase
	FetchByID    *FetchVerifierByIDUseCase
	Create       *CreateVerifierUseCase
	UpdateStatus *UpdateVerifierStatusUseCase
	Delete       *DeleteVerifierUseCase
}

func NewVerifierUseCases(repo port.VerifierRepository, handler errorhandler.Classifier) (*VerifierUseCases, error) {
	fetchAll, err1 := NewFetchAllVerifiersUseCase(repo, handler)
	fetchByID, err2 := NewFetchVerifierByIDUseCase(repo, handler)
	create, err3 := NewCreateVerifierUseCase(repo, handler)
	status, err4 := NewUpdateVerifierStatusUseCase(repo, handler)
	remove, err5 := NewDeleteVerifierUseCase(repo, handler)
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}
	return &VerifierUseCases{FetchAll: fetchAll, FetchByID: fetchByID, Create: create, UpdateStatus: status, Delete: remove}, nil
}
