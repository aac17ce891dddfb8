package infrastructure

import (
	"context"
	"fmt"

	"trackerMobility/internal/modules/verifiers/application/port"
	"trackerMobility/internal/modules/verifiers/domain"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/transport"
)

const verifiersPath = "/api/v1/verifiers"

func verifierPath(id int) string { return fmt.Sprintf("%s/%d", verifiersPath, id) }

type VerifierHTTPRepository struct {
	rest transport.Requester
}

var _ port.VerifierRepository = (*VerifierHTTPRepository)(nil)

func NewVerifierHTTPRepository(rest transport.Requester) *VerifierHTTPRepository {
	return &VerifierHTTPRepository{rest: rest}
}

func (r *VerifierHTTPRepository) FindAll(ctx context.Context) ([]domain.Verifier, error) {
	payload, err := r.rest.Get(ctx, verifiersPath, nil)
	if err != nil {
		return nil, err
	}
	return domain.BuildVerifierList(normalization.ItemsFromPayload(payload, "verifiers")), nil
}

func (r *VerifierHTTPRepository) FindByID(ctx context.Context, id int) (*domain.Verifier, error) {
	payload, err := r.rest.Get(ctx, verifierPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeVerifier(payload), nil
}

func (r *VerifierHTTPRepository) Create(ctx context.Context, cmd domain.CreateVerifierCommand) (*domain.Verifier, error) {
	payload, err := r.rest.Post(ctx, verifiersPath, cmd.Payload())
	if err != nil {
		return nil, err
	}
	verifier := decodeVerifier(payload)
	if verifier == nil {
		return nil, fmt.Errorf("create verifier: upstream returned no record")
	}
	return verifier, nil
}

func (r *VerifierHTTPRepository) UpdateStatus(ctx context.Context, cmd domain.UpdateVerifierStatusCommand) (*domain.Verifier, error) {
	payload, err := r.rest.Patch(ctx, verifierPath(cmd.VerifierID())+"/status", cmd.Payload())
	if err != nil {
		return nil, err
	}
	if verifier := decodeVerifier(payload); verifier != nil {
		return verifier, nil
	}
	return &domain.Verifier{ID: cmd.VerifierID(), Status: cmd.Status()}, nil
}

func (r *VerifierHTTPRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.rest.Delete(ctx, verifierPath(id)); err != nil {
		return fmt.Errorf("delete verifier %d: %w", id, err)
	}
	return nil
}

func decodeVerifier(payload any) *domain.Verifier {
	verifier, ok := domain.NormalizeVerifier(normalization.MapFromPayload(payload))
	if !ok {
		return nil
	}
	return &verifier
}
