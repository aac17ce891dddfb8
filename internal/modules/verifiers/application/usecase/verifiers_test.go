package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerMobility/internal/modules/verifiers/application/port"
	"trackerMobility/internal/modules/verifiers/domain"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/transport"
)

type fakeVerifiers struct {
	verifiers []domain.Verifier
	err       error
	created   []domain.CreateVerifierCommand
}

func (f *fakeVerifiers) FindAll(context.Context) ([]domain.Verifier, error) {
	return f.verifiers, f.err
}

func (f *fakeVerifiers) FindByID(_ context.Context, id int) (*domain.Verifier, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, verifier := range f.verifiers {
		if verifier.ID == id {
			return &verifier, nil
		}
	}
	return nil, nil
}

func (f *fakeVerifiers) Create(_ context.Context, cmd domain.CreateVerifierCommand) (*domain.Verifier, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, cmd)
	return &domain.Verifier{ID: 9, Email: cmd.Email(), Status: domain.VerifierStatusActive}, nil
}

func (f *fakeVerifiers) UpdateStatus(_ context.Context, cmd domain.UpdateVerifierStatusCommand) (*domain.Verifier, error) {
	return &domain.Verifier{ID: cmd.VerifierID(), Status: cmd.Status()}, f.err
}

func (f *fakeVerifiers) Delete(context.Context, int) error { return f.err }

type silentNotifier struct{ shown int }

func (n *silentNotifier) ShowError(string, string, time.Duration)   { n.shown++ }
func (n *silentNotifier) ShowWarning(string, string, time.Duration) { n.shown++ }

func newUseCases(t *testing.T, repo port.VerifierRepository, handler errorhandler.Classifier) *VerifierUseCases {
	t.Helper()
	useCases, err := NewVerifierUseCases(repo, handler)
	require.NoError(t, err)
	return useCases
}

func TestNewVerifierUseCasesRequiresRepository(t *testing.T) {
	_, err := NewVerifierUseCases(nil, nil)
	assert.ErrorIs(t, err, port.ErrRepositoryRequired)
}

func TestFetchAllVerifiers(t *testing.T) {
	useCases := newUseCases(t, &fakeVerifiers{verifiers: []domain.Verifier{{ID: 1}, {ID: 2}}}, nil)

	result := useCases.FetchAll.Execute(context.Background())
	assert.True(t, result.Success)
	assert.Equal(t, "Se obtuvieron 2 verificadores", result.Message)

	empty := newUseCases(t, &fakeVerifiers{}, nil).FetchAll.Execute(context.Background())
	assert.NotNil(t, empty.Data)
	assert.Equal(t, outcome.CodeSuccess, empty.Code)
}

func TestFetchVerifierByID(t *testing.T) {
	useCases := newUseCases(t, &fakeVerifiers{verifiers: []domain.Verifier{{ID: 3, FullName: "Rosa"}}}, nil)

	assert.Equal(t, outcome.CodeInvalidParams, useCases.FetchByID.Execute(context.Background(), "abc").Code)
	assert.Equal(t, outcome.CodeNotFound, useCases.FetchByID.Execute(context.Background(), 99).Code)

	found := useCases.FetchByID.Execute(context.Background(), "3")
	require.True(t, found.Success)
	assert.Equal(t, "Rosa", found.Data.FullName)
}

func TestCreateVerifierRejectsMalformedEmailWithoutCallingRepository(t *testing.T) {
	repo := &fakeVerifiers{}
	useCases := newUseCases(t, repo, nil)

	result := useCases.Create.Execute(context.Background(), domain.CreateVerifierInput{FullName: "Rosa", Email: "nope", Phone: "1", Document: "2"})
	assert.False(t, result.Success)
	assert.Equal(t, outcome.CodeError, result.Code)
	assert.Contains(t, result.Message, "email")
	assert.Empty(t, repo.created)

	result = useCases.Create.Execute(context.Background(), domain.CreateVerifierInput{FullName: "Rosa", Email: "rosa@mail.pe", Phone: "1", Document: "2"})
	require.True(t, result.Success)
	assert.Len(t, repo.created, 1)
}

func TestUpdateVerifierStatusClassifiesUpstreamFailure(t *testing.T) {
	notifier := &silentNotifier{}
	handler := errorhandler.New(notifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := &fakeVerifiers{err: &transport.ResponseError{Status: http.StatusBadGateway, Data: map[string]any{"error": "upstream down"}}}
	useCases := newUseCases(t, repo, handler)

	result := useCases.UpdateStatus.Execute(context.Background(), 4, domain.UpdateVerifierStatusInput{Status: "INACTIVE"})
	assert.Equal(t, outcome.CodeServerError, result.Code)
	assert.Equal(t, "upstream down", result.Message)
	assert.Equal(t, 1, notifier.shown)
}

func TestDeleteVerifier(t *testing.T) {
	useCases := newUseCases(t, &fakeVerifiers{}, nil)
	assert.Equal(t, outcome.CodeDeleted, useCases.Delete.Execute(context.Background(), 5).Code)

	failing := newUseCases(t, &fakeVerifiers{err: errors.New("boom")}, nil)
	result := failing.Delete.Execute(context.Background(), 5)
	assert.Equal(t, outcome.CodeError, result.Code)
	assert.Equal(t, "boom", result.Message)
}
