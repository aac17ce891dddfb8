package port

import (
	"context"
	"errors"

	"trackerMobility/internal/modules/verifiers/domain"
)

var ErrRepositoryRequired = errors.New("verifier repository is required")

type VerifierRepository interface {
	FindAll(ctx context.Context) ([]domain.Verifier, error)
	FindByID(ctx context.Context, id int) (*domain.Verifier, error)
	Create(ctx context.Context, cmd domain.CreateVerifierCommand) (*domain.Verifier, error)
	UpdateStatus(ctx context.Context, cmd domain.UpdateVerifierStatusCommand) (*domain.Verifier, error)
	Delete(ctx context.Context, id int) error
}
